package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 顾客、订单、订单明细三张表分别对应一个仓储
// 订单不预加载明细,明细按order_id单独查询

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓储
func NewCustomerRepository(db *gorm.DB) order.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) List(ctx context.Context) (_ []*order.Customer, err error) {
	defer observe("customer", "list")(&err)

	var models []CustomerModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询顾客列表失败")
	}

	list := make([]*order.Customer, len(models))
	for i := range models {
		list[i] = toCustomerEntity(&models[i])
	}
	return list, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (_ *order.Customer, err error) {
	defer observe("customer", "find")(&err)

	var m CustomerModel
	if err = getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询顾客失败")
	}
	return toCustomerEntity(&m), nil
}

func (r *customerRepository) Create(ctx context.Context, c *order.Customer) (err error) {
	defer observe("customer", "create")(&err)

	m := &CustomerModel{FirstName: c.FirstName, LastName: c.LastName, Address: c.Address}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrap(err, "创建顾客失败")
	}
	c.ID = m.ID
	return nil
}

func (r *customerRepository) Update(ctx context.Context, c *order.Customer) (err error) {
	defer observe("customer", "update")(&err)

	result := getDB(ctx, r.db).Model(&CustomerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"address":    c.Address,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新顾客失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("customer", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&CustomerModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除顾客失败")
	}
	return result.RowsAffected > 0, nil
}

func toCustomerEntity(m *CustomerModel) *order.Customer {
	return &order.Customer{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Address: m.Address}
}

// orderRepository 订单仓储实现
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) List(ctx context.Context) (_ []*order.Order, err error) {
	defer observe("order", "list")(&err)

	var models []OrderModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单列表失败")
	}

	list := make([]*order.Order, len(models))
	for i := range models {
		list[i] = toOrderEntity(&models[i])
	}
	return list, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (_ *order.Order, err error) {
	defer observe("order", "find")(&err)

	var m OrderModel
	if err = getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&m), nil
}

func (r *orderRepository) Create(ctx context.Context, o *order.Order) (err error) {
	defer observe("order", "create")(&err)

	m := &OrderModel{CustomerID: o.CustomerID, DeliveryAddress: o.DeliveryAddress, StoreID: o.StoreID}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}
	o.ID = m.ID
	return nil
}

func (r *orderRepository) Update(ctx context.Context, o *order.Order) (err error) {
	defer observe("order", "update")(&err)

	result := getDB(ctx, r.db).Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"customer_id":      o.CustomerID,
			"delivery_address": o.DeliveryAddress,
			"store_id":         o.StoreID,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Delete 删除订单,仍有明细时外键约束失败
func (r *orderRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("order", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&OrderModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除订单失败")
	}
	return result.RowsAffected > 0, nil
}

func toOrderEntity(m *OrderModel) *order.Order {
	return &order.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		DeliveryAddress: m.DeliveryAddress,
		StoreID:         m.StoreID,
	}
}

// orderItemRepository 订单明细仓储实现
type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建订单明细仓储
func NewOrderItemRepository(db *gorm.DB) order.ItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) List(ctx context.Context) (_ []*order.OrderItem, err error) {
	defer observe("order_item", "list")(&err)

	var models []OrderItemModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}
	return toOrderItemEntities(models), nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID uint) (_ []*order.OrderItem, err error) {
	defer observe("order_item", "list_by_order")(&err)

	var models []OrderItemModel
	err = getDB(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询订单明细失败")
	}
	return toOrderItemEntities(models), nil
}

func (r *orderItemRepository) Create(ctx context.Context, item *order.OrderItem) (err error) {
	defer observe("order_item", "create")(&err)

	m := &OrderItemModel{OrderID: item.OrderID, ISBN13: item.ISBN13, Amount: item.Amount}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrap(err, "创建订单明细失败")
	}
	item.ID = m.ID
	return nil
}

func (r *orderItemRepository) Update(ctx context.Context, item *order.OrderItem) (err error) {
	defer observe("order_item", "update")(&err)

	result := getDB(ctx, r.db).Model(&OrderItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"order_id": item.OrderID,
			"isbn13":   item.ISBN13,
			"amount":   item.Amount,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单明细失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderItemNotFound
	}
	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("order_item", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&OrderItemModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除订单明细失败")
	}
	return result.RowsAffected > 0, nil
}

func toOrderItemEntities(models []OrderItemModel) []*order.OrderItem {
	list := make([]*order.OrderItem, len(models))
	for i, m := range models {
		list[i] = &order.OrderItem{ID: m.ID, OrderID: m.OrderID, ISBN13: m.ISBN13, Amount: m.Amount}
	}
	return list
}
