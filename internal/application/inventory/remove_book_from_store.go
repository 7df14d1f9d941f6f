package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// RemoveBookFromStoreUseCase 图书出库用例
type RemoveBookFromStoreUseCase struct {
	storeService store.Service
	publisher    mq.EventPublisher
	log          zerolog.Logger
}

// NewRemoveBookFromStoreUseCase 创建出库用例
func NewRemoveBookFromStoreUseCase(
	storeService store.Service,
	publisher mq.EventPublisher,
	log zerolog.Logger,
) *RemoveBookFromStoreUseCase {
	return &RemoveBookFromStoreUseCase{storeService: storeService, publisher: publisher, log: log}
}

// RemoveBookFromStoreRequest 出库请求DTO
type RemoveBookFromStoreRequest struct {
	StoreID uint
	ISBN13  string
	Amount  int
}

// RemoveBookFromStoreResponse 出库响应DTO
type RemoveBookFromStoreResponse struct {
	Deleted   bool `json:"deleted"`   // 库存行被整行删除
	Remaining int  `json:"remaining"` // 剩余数量
}

// Execute 执行出库
// 业务规则:
// - 门店没有任何库存:store.ErrNoBooksInStore
// - 出库数量>=库存:删除整行
// - 出库数量<库存:扣减
func (uc *RemoveBookFromStoreUseCase) Execute(ctx context.Context, req RemoveBookFromStoreRequest) (resp *RemoveBookFromStoreResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RemoveBookFromStore")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 门店必须有库存
	if _, err := uc.storeService.ListStoreInventory(ctx, req.StoreID); err != nil {
		return nil, err
	}

	// 2. 扣减或删除
	remaining, err := uc.storeService.UnstockBook(ctx, req.StoreID, req.ISBN13, req.Amount)
	if err != nil {
		return nil, err
	}

	// 3. 发布事件
	mq.PublishEvent(ctx, uc.publisher, uc.log, EventInventoryRemoved, InventoryChanged{
		StoreID: req.StoreID,
		ISBN13:  req.ISBN13,
		Delta:   -req.Amount,
		Amount:  remaining,
	})

	return &RemoveBookFromStoreResponse{Deleted: remaining == 0, Remaining: remaining}, nil
}
