package rdb

import (
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
)

// NewSeedRepositories 基于同一个连接创建seed用到的全部仓储
func NewSeedRepositories(db *gorm.DB) seed.Repositories {
	stores := NewStoreRepository(db)
	return seed.Repositories{
		Languages:  NewLanguageRepository(db),
		Publishers: NewPublisherRepository(db),
		Authors:    NewAuthorRepository(db),
		Books:      book.NewService(NewBookRepository(db)),
		Stores:     stores,
		Inventory:  store.NewService(stores, NewInventoryRepository(db)),
		Customers:  NewCustomerRepository(db),
		Orders:     NewOrderRepository(db),
		OrderItems: NewOrderItemRepository(db),
	}
}
