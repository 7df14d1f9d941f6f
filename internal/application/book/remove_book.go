package book

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// RemoveBookUseCase 删除图书用例
// 图书仍有库存或订单明细时外键约束失败,属于存储层错误
type RemoveBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
	log         zerolog.Logger
}

// NewRemoveBookUseCase 创建删除图书用例
func NewRemoveBookUseCase(bookService book.Service, eventPublisher mq.EventPublisher, log zerolog.Logger) *RemoveBookUseCase {
	return &RemoveBookUseCase{bookService: bookService, publisher: eventPublisher, log: log}
}

// Execute 执行删除,返回是否删除了记录
func (uc *RemoveBookUseCase) Execute(ctx context.Context, isbn13 string) (removed bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RemoveBook")
	defer func() { tracing.EndSpan(span, err) }()

	removed, err = uc.bookService.RemoveBook(ctx, isbn13)
	if err != nil || !removed {
		return removed, err
	}

	mq.PublishEvent(ctx, uc.publisher, uc.log, EventBookRemoved, BookChanged{ISBN13: isbn13})
	return true, nil
}
