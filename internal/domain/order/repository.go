package order

import (
	"context"
)

// CustomerRepository 顾客仓储接口
type CustomerRepository interface {
	List(ctx context.Context) ([]*Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// Repository 订单仓储接口
// 订单与明细分开存取,明细通过ItemRepository按订单查询
type Repository interface {
	// List 查询全部订单(按ID排序)
	List(ctx context.Context) ([]*Order, error)

	// FindByID 根据ID查找订单
	FindByID(ctx context.Context, id uint) (*Order, error)

	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// ItemRepository 订单明细仓储接口
type ItemRepository interface {
	List(ctx context.Context) ([]*OrderItem, error)

	// ListByOrder 查询某个订单的全部明细
	ListByOrder(ctx context.Context, orderID uint) ([]*OrderItem, error)

	Create(ctx context.Context, item *OrderItem) error
	Update(ctx context.Context, item *OrderItem) error
	Delete(ctx context.Context, id uint) (bool, error)
}
