package store

import (
	"context"
)

// Repository 门店仓储接口
type Repository interface {
	// List 查询全部门店(按ID排序)
	List(ctx context.Context) ([]*Store, error)

	// FindByID 根据ID查找门店,不存在返回ErrStoreNotFound
	FindByID(ctx context.Context, id uint) (*Store, error)

	// Create 创建门店并回填ID,地址重复返回ErrAddressDuplicate
	Create(ctx context.Context, s *Store) error

	// Update 更新门店
	Update(ctx context.Context, s *Store) error

	// Delete 删除门店,返回是否有记录被删除
	Delete(ctx context.Context, id uint) (bool, error)
}

// InventoryRepository 门店库存仓储接口
type InventoryRepository interface {
	// List 查询全部库存行(按门店ID、ISBN排序)
	List(ctx context.Context) ([]*Inventory, error)

	// ListByStore 查询某门店的库存行
	ListByStore(ctx context.Context, storeID uint) ([]*Inventory, error)

	// Find 查找库存行,不存在返回ErrInventoryNotFound
	Find(ctx context.Context, storeID uint, isbn13 string) (*Inventory, error)

	// Create 插入库存行
	Create(ctx context.Context, inv *Inventory) error

	// Update 更新库存数量
	Update(ctx context.Context, inv *Inventory) error

	// Delete 删除库存行,返回是否有记录被删除
	Delete(ctx context.Context, storeID uint, isbn13 string) (bool, error)
}
