package order

// Customer 顾客
type Customer struct {
	ID        uint
	FirstName string
	LastName  string
	Address   string
}

// FullName 顾客全名
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Order 订单
// 只保存外键(CustomerID/StoreID),不持有导航对象
type Order struct {
	ID              uint
	CustomerID      uint
	DeliveryAddress string
	StoreID         uint
}

// OrderItem 订单明细
type OrderItem struct {
	ID      uint
	OrderID uint
	ISBN13  string
	Amount  int
}

// NewOrder 创建订单,收货地址为空时使用顾客地址
func NewOrder(c *Customer, storeID uint, deliveryAddress string) *Order {
	if deliveryAddress == "" {
		deliveryAddress = c.Address
	}
	return &Order{
		CustomerID:      c.ID,
		DeliveryAddress: deliveryAddress,
		StoreID:         storeID,
	}
}

// NewOrderItem 创建订单明细
func NewOrderItem(orderID uint, isbn13 string, amount int) (*OrderItem, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &OrderItem{OrderID: orderID, ISBN13: isbn13, Amount: amount}, nil
}
