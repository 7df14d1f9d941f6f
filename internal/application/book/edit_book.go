package book

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// EditBookUseCase 修改图书用例,ISBN不可修改
type EditBookUseCase struct {
	bookService book.Service
	refs        refs
	publisher   mq.EventPublisher
	log         zerolog.Logger
}

// NewEditBookUseCase 创建修改图书用例
func NewEditBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	publisherRepo publisher.Repository,
	languageRepo language.Repository,
	eventPublisher mq.EventPublisher,
	log zerolog.Logger,
) *EditBookUseCase {
	return &EditBookUseCase{
		bookService: bookService,
		refs:        refs{authorRepo: authorRepo, publisherRepo: publisherRepo, languageRepo: languageRepo},
		publisher:   eventPublisher,
		log:         log,
	}
}

// Execute 执行修改,req.ISBN13指定要修改的图书
func (uc *EditBookUseCase) Execute(ctx context.Context, req BookRequest) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "EditBook")
	defer func() { tracing.EndSpan(span, err) }()

	if err := uc.refs.check(ctx, req); err != nil {
		return err
	}

	b, err := uc.bookService.EditBook(ctx, req.ISBN13, req.details())
	if err != nil {
		return err
	}

	mq.PublishEvent(ctx, uc.publisher, uc.log, EventBookEdited, BookChanged{ISBN13: b.ISBN13, Title: b.Title})
	return nil
}
