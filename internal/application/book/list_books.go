package book

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const tracerName = "bookstore-admin/application/book"

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 图书只保存外键,作者、出版社、语种的名称在内存中按ID关联
// 2. 四张表各查一次,不做N+1查询
type ListBooksUseCase struct {
	bookService   book.Service
	authorRepo    author.Repository
	publisherRepo publisher.Repository
	languageRepo  language.Repository
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	publisherRepo publisher.Repository,
	languageRepo language.Repository,
) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService:   bookService,
		authorRepo:    authorRepo,
		publisherRepo: publisherRepo,
		languageRepo:  languageRepo,
	}
}

// BookListItem 列表项DTO
type BookListItem struct {
	ISBN13          string          `json:"isbn13"`
	Title           string          `json:"title"`
	AuthorFirstName string          `json:"author_first_name"`
	AuthorLastName  string          `json:"author_last_name"`
	Price           decimal.Decimal `json:"price"`
	Language        string          `json:"language"`
	Publisher       string          `json:"publisher"`
	DatePublished   *time.Time      `json:"date_published,omitempty"`
	AuthorID        uint            `json:"author_id"`
	PublisherID     uint            `json:"publisher_id"`
	LanguageID      uint            `json:"language_id"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List []BookListItem `json:"list"`
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (resp *ListBooksResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 查询图书
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	// 2. 查询参考数据
	authors, err := uc.authorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	publishers, err := uc.publisherRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	languages, err := uc.languageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	authorByID := make(map[uint]*author.Author, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}
	publisherByID := make(map[uint]string, len(publishers))
	for _, p := range publishers {
		publisherByID[p.ID] = p.Name
	}
	languageByID := make(map[uint]string, len(languages))
	for _, l := range languages {
		languageByID[l.ID] = l.Name
	}

	// 3. 组装DTO
	resp = &ListBooksResponse{List: make([]BookListItem, len(books))}
	for i, b := range books {
		item := BookListItem{
			ISBN13:        b.ISBN13,
			Title:         b.Title,
			Price:         b.Price,
			Language:      languageByID[b.LanguageID],
			Publisher:     publisherByID[b.PublisherID],
			DatePublished: b.DatePublished,
			AuthorID:      b.AuthorID,
			PublisherID:   b.PublisherID,
			LanguageID:    b.LanguageID,
		}
		if a, ok := authorByID[b.AuthorID]; ok {
			item.AuthorFirstName = a.FirstName
			item.AuthorLastName = a.LastName
		}
		resp.List[i] = item
	}
	return resp, nil
}
