package rdb

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB
// 3. 嵌套调用时GORM自动使用Savepoint
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内通过ctx调用的仓储方法都在同一事务中执行,
// fn返回error时ROLLBACK,返回nil时COMMIT
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := storeRepo.Create(ctx, s); err != nil {
//	        return err
//	    }
//	    return inventoryRepo.Create(ctx, inv)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
