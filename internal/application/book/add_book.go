package book

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// 图书变更事件
const (
	EventBookAdded   = "book.added"
	EventBookEdited  = "book.edited"
	EventBookRemoved = "book.removed"
)

// BookChanged 图书变更事件载荷
type BookChanged struct {
	ISBN13 string `json:"isbn13"`
	Title  string `json:"title,omitempty"`
}

// BookRequest 新增/修改图书请求DTO
type BookRequest struct {
	ISBN13        string
	Title         string
	Price         decimal.Decimal
	DatePublished time.Time
	AuthorID      uint
	PublisherID   uint
	LanguageID    uint
}

func (r BookRequest) details() book.Details {
	return book.Details{
		Title:         r.Title,
		Price:         r.Price,
		DatePublished: r.DatePublished,
		AuthorID:      r.AuthorID,
		PublisherID:   r.PublisherID,
		LanguageID:    r.LanguageID,
	}
}

// refs 作者、出版社、语种外键检查
type refs struct {
	authorRepo    author.Repository
	publisherRepo publisher.Repository
	languageRepo  language.Repository
}

func (r refs) check(ctx context.Context, req BookRequest) error {
	if _, err := r.authorRepo.FindByID(ctx, req.AuthorID); err != nil {
		return err
	}
	if _, err := r.publisherRepo.FindByID(ctx, req.PublisherID); err != nil {
		return err
	}
	if _, err := r.languageRepo.FindByID(ctx, req.LanguageID); err != nil {
		return err
	}
	return nil
}

// AddBookUseCase 新增图书用例
type AddBookUseCase struct {
	bookService book.Service
	refs        refs
	publisher   mq.EventPublisher
	log         zerolog.Logger
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	publisherRepo publisher.Repository,
	languageRepo language.Repository,
	eventPublisher mq.EventPublisher,
	log zerolog.Logger,
) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		refs:        refs{authorRepo: authorRepo, publisherRepo: publisherRepo, languageRepo: languageRepo},
		publisher:   eventPublisher,
		log:         log,
	}
}

// ValidateISBN 输入ISBN后立即校验(13个字符且不重复),不必等到全部字段填完
func (uc *AddBookUseCase) ValidateISBN(ctx context.Context, isbn13 string) error {
	return uc.bookService.ValidateNewISBN(ctx, isbn13)
}

// Execute 执行新增图书
func (uc *AddBookUseCase) Execute(ctx context.Context, req BookRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddBook")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 外键检查
	if err := uc.refs.check(ctx, req); err != nil {
		return err
	}

	// 2. 调用领域服务(ISBN、价格校验)
	b, err := uc.bookService.AddBook(ctx, req.ISBN13, req.details())
	if err != nil {
		return err
	}

	// 3. 发布事件
	mq.PublishEvent(ctx, uc.publisher, uc.log, EventBookAdded, BookChanged{ISBN13: b.ISBN13, Title: b.Title})
	return nil
}
