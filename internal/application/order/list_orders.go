package order

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const tracerName = "bookstore-admin/application/order"

// ListOrdersUseCase 订单列表(只读)
// 顾客、门店按ID关联,明细按订单分组
type ListOrdersUseCase struct {
	orderRepo    order.Repository
	itemRepo     order.ItemRepository
	customerRepo order.CustomerRepository
	storeRepo    store.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(
	orderRepo order.Repository,
	itemRepo order.ItemRepository,
	customerRepo order.CustomerRepository,
	storeRepo store.Repository,
) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
	}
}

// OrderItemDTO 订单明细DTO
type OrderItemDTO struct {
	ISBN13 string `json:"isbn13"`
	Amount int    `json:"amount"`
}

// OrderDTO 订单DTO
type OrderDTO struct {
	ID              uint           `json:"id"`
	Customer        string         `json:"customer"`
	DeliveryAddress string         `json:"delivery_address"`
	Store           string         `json:"store"`
	Items           []OrderItemDTO `json:"items"`
}

// Execute 查询全部订单
func (uc *ListOrdersUseCase) Execute(ctx context.Context) (list []OrderDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListOrders")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 每张表查一次
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// 2. 建索引
	customerByID := make(map[uint]string, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c.FullName()
	}
	storeByID := make(map[uint]string, len(stores))
	for _, s := range stores {
		storeByID[s.ID] = s.Name
	}
	itemsByOrder := make(map[uint][]OrderItemDTO)
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], OrderItemDTO{ISBN13: it.ISBN13, Amount: it.Amount})
	}

	// 3. 组装
	list = make([]OrderDTO, len(orders))
	for i, o := range orders {
		list[i] = OrderDTO{
			ID:              o.ID,
			Customer:        customerByID[o.CustomerID],
			DeliveryAddress: o.DeliveryAddress,
			Store:           storeByID[o.StoreID],
			Items:           itemsByOrder[o.ID],
		}
	}
	return list, nil
}
