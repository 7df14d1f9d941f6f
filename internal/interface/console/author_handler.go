package console

import (
	"context"

	appauthor "github.com/xiebiao/bookstore-admin/internal/application/author"
)

// AuthorHandler 作者菜单处理器
type AuthorHandler struct {
	console             *Console
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	addAuthorUseCase    *appauthor.AddAuthorUseCase
	editAuthorUseCase   *appauthor.EditAuthorUseCase
	removeAuthorUseCase *appauthor.RemoveAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	console *Console,
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	addAuthorUseCase *appauthor.AddAuthorUseCase,
	editAuthorUseCase *appauthor.EditAuthorUseCase,
	removeAuthorUseCase *appauthor.RemoveAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		console:             console,
		listAuthorsUseCase:  listAuthorsUseCase,
		addAuthorUseCase:    addAuthorUseCase,
		editAuthorUseCase:   editAuthorUseCase,
		removeAuthorUseCase: removeAuthorUseCase,
	}
}

// ListAuthors 列出全部作者
func (h *AuthorHandler) ListAuthors(ctx context.Context) error {
	list, err := h.listAuthorsUseCase.Execute(ctx)
	if err != nil {
		return err
	}

	for _, a := range list {
		h.console.Printf("===%s %s===\n", a.FirstName, a.LastName)
		h.console.Printf("\tBirthdate: %s\n", formatDate(a.Birthdate))
		h.console.Println()
	}
	return h.console.Wait()
}

// AddAuthor 新增作者:名 -> 姓 -> 出生日期
func (h *AuthorHandler) AddAuthor(ctx context.Context) error {
	req, err := h.readAuthor()
	if err != nil {
		return err
	}
	if _, err := h.addAuthorUseCase.Execute(ctx, req); err != nil {
		return err
	}
	return h.console.Done(MsgAuthorAdded)
}

// EditAuthor 修改作者:先选择作者,再输入全部字段
func (h *AuthorHandler) EditAuthor(ctx context.Context) error {
	id, err := h.selectAuthor(ctx)
	if err != nil {
		return err
	}
	req, err := h.readAuthor()
	if err != nil {
		return err
	}
	req.ID = id

	if _, err := h.editAuthorUseCase.Execute(ctx, req); err != nil {
		return err
	}
	return h.console.Done(MsgAuthorEdited)
}

// RemoveAuthor 删除作者
func (h *AuthorHandler) RemoveAuthor(ctx context.Context) error {
	id, err := h.selectAuthor(ctx)
	if err != nil {
		return err
	}
	if _, err := h.removeAuthorUseCase.Execute(ctx, id); err != nil {
		return err
	}
	return h.console.Done(MsgAuthorRemoved)
}

func (h *AuthorHandler) selectAuthor(ctx context.Context) (uint, error) {
	list, err := h.listAuthorsUseCase.Execute(ctx)
	if err != nil {
		return 0, err
	}
	labels := make([]string, len(list))
	for i, a := range list {
		labels[i] = a.FirstName + " " + a.LastName
	}
	idx, err := h.console.Select(PromptSelectAuthor, labels)
	if err != nil {
		return 0, err
	}
	return list[idx].ID, nil
}

func (h *AuthorHandler) readAuthor() (appauthor.AuthorRequest, error) {
	var (
		req appauthor.AuthorRequest
		err error
	)
	if req.FirstName, err = h.console.Prompt(PromptEnterFirstName); err != nil {
		return req, err
	}
	if req.LastName, err = h.console.Prompt(PromptEnterLastName); err != nil {
		return req, err
	}
	if req.Birthdate, err = h.console.ReadDate(PromptEnterBirthdate); err != nil {
		return req, err
	}
	return req, nil
}
