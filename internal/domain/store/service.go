package store

import (
	"context"
	"errors"
)

// Service 门店库存领域服务接口
type Service interface {
	// ListStores 查询全部门店
	ListStores(ctx context.Context) ([]*Store, error)

	// GetStore 根据ID获取门店
	GetStore(ctx context.Context, id uint) (*Store, error)

	// ListInventory 查询全部库存行
	ListInventory(ctx context.Context) ([]*Inventory, error)

	// ListStoreInventory 查询某门店的库存行,门店没有库存时返回ErrNoBooksInStore
	ListStoreInventory(ctx context.Context, storeID uint) ([]*Inventory, error)

	// StockBook 入库
	// 已有库存行时累加数量,否则插入新行;created表示是否插入了新行
	StockBook(ctx context.Context, storeID uint, isbn13 string, amount int) (inv *Inventory, created bool, err error)

	// UnstockBook 出库
	// 出库数量>=当前库存时删除整行(remaining为0),否则扣减
	UnstockBook(ctx context.Context, storeID uint, isbn13 string, amount int) (remaining int, err error)
}

type service struct {
	stores    Repository
	inventory InventoryRepository
}

// NewService 创建门店库存领域服务
func NewService(stores Repository, inventory InventoryRepository) Service {
	return &service{stores: stores, inventory: inventory}
}

func (s *service) ListStores(ctx context.Context) ([]*Store, error) {
	return s.stores.List(ctx)
}

func (s *service) GetStore(ctx context.Context, id uint) (*Store, error) {
	return s.stores.FindByID(ctx, id)
}

func (s *service) ListInventory(ctx context.Context) ([]*Inventory, error) {
	return s.inventory.List(ctx)
}

func (s *service) ListStoreInventory(ctx context.Context, storeID uint) ([]*Inventory, error) {
	rows, err := s.inventory.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoBooksInStore
	}
	return rows, nil
}

// StockBook 入库
func (s *service) StockBook(ctx context.Context, storeID uint, isbn13 string, amount int) (*Inventory, bool, error) {
	// 1. 数量校验(先于任何读写)
	if amount <= 0 {
		return nil, false, ErrInvalidAmount
	}

	// 2. 查询已有库存行
	inv, err := s.inventory.Find(ctx, storeID, isbn13)
	switch {
	case errors.Is(err, ErrInventoryNotFound):
		// 3a. 没有则插入
		inv, err = NewInventory(storeID, isbn13, amount)
		if err != nil {
			return nil, false, err
		}
		if err := s.inventory.Create(ctx, inv); err != nil {
			return nil, false, err
		}
		return inv, true, nil
	case err != nil:
		return nil, false, err
	}

	// 3b. 已有则累加
	if err := inv.Add(amount); err != nil {
		return nil, false, err
	}
	if err := s.inventory.Update(ctx, inv); err != nil {
		return nil, false, err
	}
	return inv, false, nil
}

// UnstockBook 出库
func (s *service) UnstockBook(ctx context.Context, storeID uint, isbn13 string, amount int) (int, error) {
	// 1. 数量校验
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	// 2. 查询库存行
	inv, err := s.inventory.Find(ctx, storeID, isbn13)
	if err != nil {
		return 0, err
	}

	// 3. 扣减或删除
	depleted, err := inv.Remove(amount)
	if err != nil {
		return 0, err
	}
	if depleted {
		if _, err := s.inventory.Delete(ctx, storeID, isbn13); err != nil {
			return 0, err
		}
		return 0, nil
	}

	if err := s.inventory.Update(ctx, inv); err != nil {
		return 0, err
	}
	return inv.Amount, nil
}
