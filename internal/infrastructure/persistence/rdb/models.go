package rdb

import (
	"time"

	"github.com/shopspring/decimal"
)

// 数据模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. 表结构由migrations下的SQL脚本维护,这里只描述列映射
// 3. 只有外键列,没有导航字段,关联数据由应用层显式查询

// LanguageModel 语种表
type LanguageModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (LanguageModel) TableName() string {
	return "languages"
}

// PublisherModel 出版社表
type PublisherModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null"`
	Address string `gorm:"size:100"`
}

func (PublisherModel) TableName() string {
	return "publishers"
}

// AuthorModel 作者表
type AuthorModel struct {
	ID        uint       `gorm:"primaryKey"`
	FirstName string     `gorm:"size:100;not null"`
	LastName  string     `gorm:"size:100;not null"`
	Birthdate *time.Time `gorm:"type:date"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel 图书表
// ISBN13是主键(定长13),价格可为空
type BookModel struct {
	ISBN13        string              `gorm:"column:isbn13;primaryKey;type:char(13)"`
	Title         string              `gorm:"size:100;not null"`
	LanguageID    uint                `gorm:"not null"`
	Price         decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	DatePublished *time.Time          `gorm:"type:date"`
	AuthorID      uint                `gorm:"not null"`
	PublisherID   uint                `gorm:"not null"`
}

func (BookModel) TableName() string {
	return "books"
}

// StoreModel 门店表,地址唯一
type StoreModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null"`
	Address string `gorm:"size:100;uniqueIndex"`
}

func (StoreModel) TableName() string {
	return "stores"
}

// StoreInventoryModel 门店库存表,(门店, ISBN)联合主键
type StoreInventoryModel struct {
	StoreID uint   `gorm:"primaryKey;autoIncrement:false"`
	ISBN13  string `gorm:"column:isbn13;primaryKey;type:char(13)"`
	Amount  int    `gorm:"not null"`
}

func (StoreInventoryModel) TableName() string {
	return "store_inventory"
}

// CustomerModel 顾客表
type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Address   string `gorm:"size:100"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

// OrderModel 订单表
type OrderModel struct {
	ID              uint   `gorm:"primaryKey"`
	CustomerID      uint   `gorm:"index;not null"`
	DeliveryAddress string `gorm:"size:100"`
	StoreID         uint   `gorm:"not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
type OrderItemModel struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID uint   `gorm:"index;not null"`
	ISBN13  string `gorm:"column:isbn13;type:char(13);not null"`
	Amount  int    `gorm:"not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
