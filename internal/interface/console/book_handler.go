package console

import (
	"context"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
)

// BookHandler 图书菜单处理器
type BookHandler struct {
	console            *Console
	listBooksUseCase   *appbook.ListBooksUseCase
	formOptionsUseCase *appbook.FormOptionsUseCase
	addBookUseCase     *appbook.AddBookUseCase
	editBookUseCase    *appbook.EditBookUseCase
	removeBookUseCase  *appbook.RemoveBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	console *Console,
	listBooksUseCase *appbook.ListBooksUseCase,
	formOptionsUseCase *appbook.FormOptionsUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	editBookUseCase *appbook.EditBookUseCase,
	removeBookUseCase *appbook.RemoveBookUseCase,
) *BookHandler {
	return &BookHandler{
		console:            console,
		listBooksUseCase:   listBooksUseCase,
		formOptionsUseCase: formOptionsUseCase,
		addBookUseCase:     addBookUseCase,
		editBookUseCase:    editBookUseCase,
		removeBookUseCase:  removeBookUseCase,
	}
}

// ListBooks 列出全部图书
func (h *BookHandler) ListBooks(ctx context.Context) error {
	resp, err := h.listBooksUseCase.Execute(ctx)
	if err != nil {
		return err
	}

	for _, b := range resp.List {
		h.console.Printf("===%s===\n", b.Title)
		h.console.Printf("\tAuthor: %s %s\n", b.AuthorFirstName, b.AuthorLastName)
		h.console.Printf("\tISBN13: %s\n", b.ISBN13)
		h.console.Printf("\tPrice: %s\n", b.Price.StringFixed(2))
		h.console.Printf("\tLanguage: %s\n", b.Language)
		h.console.Printf("\tPublisher: %s\n", b.Publisher)
		h.console.Printf("\tDate published: %s\n", formatDate(b.DatePublished))
		h.console.Println()
	}
	return h.console.Wait()
}

// AddBook 新增图书:作者 -> 出版社 -> 语言 -> 书名 -> ISBN13 -> 价格 -> 出版日期
func (h *BookHandler) AddBook(ctx context.Context) error {
	req, err := h.readRefs(ctx)
	if err != nil {
		return err
	}

	if req.Title, err = h.console.Prompt(PromptEnterTitle); err != nil {
		return err
	}

	// ISBN输入后立即校验
	if req.ISBN13, err = h.console.Prompt(PromptEnterISBN13); err != nil {
		return err
	}
	if err := h.addBookUseCase.ValidateISBN(ctx, req.ISBN13); err != nil {
		return err
	}

	if err := h.readPriceAndDate(&req); err != nil {
		return err
	}

	if err := h.addBookUseCase.Execute(ctx, req); err != nil {
		return err
	}
	return h.console.Done(MsgBookAdded)
}

// EditBook 修改图书:图书 -> 作者 -> 出版社 -> 语言 -> 书名 -> 价格 -> 出版日期
func (h *BookHandler) EditBook(ctx context.Context) error {
	isbn13, err := h.selectBook(ctx)
	if err != nil {
		return err
	}

	req, err := h.readRefs(ctx)
	if err != nil {
		return err
	}
	req.ISBN13 = isbn13

	if req.Title, err = h.console.Prompt(PromptEnterTitle); err != nil {
		return err
	}
	if err := h.readPriceAndDate(&req); err != nil {
		return err
	}

	if err := h.editBookUseCase.Execute(ctx, req); err != nil {
		return err
	}
	return h.console.Done(MsgBookEdited)
}

// RemoveBook 删除图书
func (h *BookHandler) RemoveBook(ctx context.Context) error {
	isbn13, err := h.selectBook(ctx)
	if err != nil {
		return err
	}
	if _, err := h.removeBookUseCase.Execute(ctx, isbn13); err != nil {
		return err
	}
	return h.console.Done(MsgBookRemoved)
}

func (h *BookHandler) selectBook(ctx context.Context) (string, error) {
	books, err := h.listBooksUseCase.Execute(ctx)
	if err != nil {
		return "", err
	}
	labels := make([]string, len(books.List))
	for i, b := range books.List {
		labels[i] = b.Title
	}
	idx, err := h.console.Select(PromptSelectBook, labels)
	if err != nil {
		return "", err
	}
	return books.List[idx].ISBN13, nil
}

// readRefs 依次选择作者、出版社、语言
func (h *BookHandler) readRefs(ctx context.Context) (appbook.BookRequest, error) {
	var req appbook.BookRequest

	opts, err := h.formOptionsUseCase.Execute(ctx)
	if err != nil {
		return req, err
	}

	steps := []struct {
		prompt  string
		options []appbook.Option
		target  *uint
	}{
		{PromptSelectAuthor, opts.Authors, &req.AuthorID},
		{PromptSelectPublisher, opts.Publishers, &req.PublisherID},
		{PromptSelectLanguage, opts.Languages, &req.LanguageID},
	}
	for _, step := range steps {
		labels := make([]string, len(step.options))
		for i, o := range step.options {
			labels[i] = o.Label
		}
		idx, err := h.console.Select(step.prompt, labels)
		if err != nil {
			return req, err
		}
		*step.target = step.options[idx].ID
	}
	return req, nil
}

func (h *BookHandler) readPriceAndDate(req *appbook.BookRequest) error {
	price, err := h.console.ReadPrice()
	if err != nil {
		return err
	}
	published, err := h.console.ReadDate(PromptEnterPublished)
	if err != nil {
		return err
	}
	req.Price = price
	req.DatePublished = published
	return nil
}
