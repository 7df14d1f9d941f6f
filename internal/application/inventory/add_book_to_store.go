package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// 库存变更事件
const (
	EventInventoryAdded   = "inventory.added"
	EventInventoryRemoved = "inventory.removed"
)

// InventoryChanged 库存变更事件载荷
type InventoryChanged struct {
	StoreID uint   `json:"store_id"`
	ISBN13  string `json:"isbn13"`
	Delta   int    `json:"delta"`
	Amount  int    `json:"amount"` // 变更后的数量,整行删除时为0
}

// AddBookToStoreUseCase 图书入库用例
type AddBookToStoreUseCase struct {
	storeService store.Service
	bookRepo     book.Repository
	publisher    mq.EventPublisher
	log          zerolog.Logger
}

// NewAddBookToStoreUseCase 创建入库用例
func NewAddBookToStoreUseCase(
	storeService store.Service,
	bookRepo book.Repository,
	publisher mq.EventPublisher,
	log zerolog.Logger,
) *AddBookToStoreUseCase {
	return &AddBookToStoreUseCase{
		storeService: storeService,
		bookRepo:     bookRepo,
		publisher:    publisher,
		log:          log,
	}
}

// AddBookToStoreRequest 入库请求DTO
type AddBookToStoreRequest struct {
	StoreID uint
	ISBN13  string
	Amount  int
}

// AddBookToStoreResponse 入库响应DTO
// Created为true表示插入了新的库存行,false表示在已有行上累加
type AddBookToStoreResponse struct {
	Created bool `json:"created"`
	Amount  int  `json:"amount"`
}

// Execute 执行入库
func (uc *AddBookToStoreUseCase) Execute(ctx context.Context, req AddBookToStoreRequest) (resp *AddBookToStoreResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddBookToStore")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 门店和图书必须存在
	if _, err := uc.storeService.GetStore(ctx, req.StoreID); err != nil {
		return nil, err
	}
	if _, err := uc.bookRepo.FindByISBN(ctx, req.ISBN13); err != nil {
		return nil, err
	}

	// 2. 累加或插入
	inv, created, err := uc.storeService.StockBook(ctx, req.StoreID, req.ISBN13, req.Amount)
	if err != nil {
		return nil, err
	}

	// 3. 发布事件
	mq.PublishEvent(ctx, uc.publisher, uc.log, EventInventoryAdded, InventoryChanged{
		StoreID: inv.StoreID,
		ISBN13:  inv.ISBN13,
		Delta:   req.Amount,
		Amount:  inv.Amount,
	})

	uc.log.Debug().
		Uint("store_id", req.StoreID).
		Str("isbn13", req.ISBN13).
		Int("amount", inv.Amount).
		Bool("created", created).
		Msg("book added to store")

	return &AddBookToStoreResponse{Created: created, Amount: inv.Amount}, nil
}
