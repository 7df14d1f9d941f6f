package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// storeRepository 门店仓储实现
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建门店仓储
func NewStoreRepository(db *gorm.DB) store.Repository {
	return &storeRepository{db: db}
}

func (r *storeRepository) List(ctx context.Context) (_ []*store.Store, err error) {
	defer observe("store", "list")(&err)

	var models []StoreModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询门店列表失败")
	}

	stores := make([]*store.Store, len(models))
	for i, m := range models {
		stores[i] = &store.Store{ID: m.ID, Name: m.Name, Address: m.Address}
	}
	return stores, nil
}

func (r *storeRepository) FindByID(ctx context.Context, id uint) (_ *store.Store, err error) {
	defer observe("store", "find")(&err)

	var m StoreModel
	if err = getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrStoreNotFound
		}
		return nil, apperrors.Wrap(err, "查询门店失败")
	}
	return &store.Store{ID: m.ID, Name: m.Name, Address: m.Address}, nil
}

// Create 创建门店,地址重复返回ErrAddressDuplicate
func (r *storeRepository) Create(ctx context.Context, s *store.Store) (err error) {
	defer observe("store", "create")(&err)

	m := &StoreModel{Name: s.Name, Address: s.Address}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		if isDuplicateError(err) {
			return store.ErrAddressDuplicate
		}
		return apperrors.Wrap(err, "创建门店失败")
	}
	s.ID = m.ID
	return nil
}

func (r *storeRepository) Update(ctx context.Context, s *store.Store) (err error) {
	defer observe("store", "update")(&err)

	result := getDB(ctx, r.db).Model(&StoreModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{"name": s.Name, "address": s.Address})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return store.ErrAddressDuplicate
		}
		return apperrors.Wrap(result.Error, "更新门店失败")
	}
	if result.RowsAffected == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("store", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&StoreModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除门店失败")
	}
	return result.RowsAffected > 0, nil
}

// inventoryRepository 门店库存仓储实现
// 联合主键(store_id, isbn13),所有条件都显式写出两列
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB) store.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(ctx context.Context) (_ []*store.Inventory, err error) {
	defer observe("inventory", "list")(&err)

	var models []StoreInventoryModel
	if err = getDB(ctx, r.db).Order("store_id").Order("isbn13").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询库存失败")
	}
	return toInventoryEntities(models), nil
}

func (r *inventoryRepository) ListByStore(ctx context.Context, storeID uint) (_ []*store.Inventory, err error) {
	defer observe("inventory", "list_by_store")(&err)

	var models []StoreInventoryModel
	err = getDB(ctx, r.db).
		Where("store_id = ?", storeID).
		Order("isbn13").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrapf(err, "查询门店%d库存失败", storeID)
	}
	return toInventoryEntities(models), nil
}

func (r *inventoryRepository) Find(ctx context.Context, storeID uint, isbn13 string) (_ *store.Inventory, err error) {
	defer observe("inventory", "find")(&err)

	var m StoreInventoryModel
	err = getDB(ctx, r.db).
		Where("store_id = ? AND isbn13 = ?", storeID, isbn13).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrInventoryNotFound
		}
		return nil, apperrors.Wrapf(err, "查询库存失败(store=%d, isbn13=%s)", storeID, isbn13)
	}
	return &store.Inventory{StoreID: m.StoreID, ISBN13: m.ISBN13, Amount: m.Amount}, nil
}

func (r *inventoryRepository) Create(ctx context.Context, inv *store.Inventory) (err error) {
	defer observe("inventory", "create")(&err)

	m := &StoreInventoryModel{StoreID: inv.StoreID, ISBN13: inv.ISBN13, Amount: inv.Amount}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrapf(err, "创建库存失败(store=%d, isbn13=%s)", inv.StoreID, inv.ISBN13)
	}
	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, inv *store.Inventory) (err error) {
	defer observe("inventory", "update")(&err)

	result := getDB(ctx, r.db).Model(&StoreInventoryModel{}).
		Where("store_id = ? AND isbn13 = ?", inv.StoreID, inv.ISBN13).
		Update("amount", inv.Amount)
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "更新库存失败(store=%d, isbn13=%s)", inv.StoreID, inv.ISBN13)
	}
	if result.RowsAffected == 0 {
		return store.ErrInventoryNotFound
	}
	return nil
}

func (r *inventoryRepository) Delete(ctx context.Context, storeID uint, isbn13 string) (_ bool, err error) {
	defer observe("inventory", "delete")(&err)

	result := getDB(ctx, r.db).
		Where("store_id = ? AND isbn13 = ?", storeID, isbn13).
		Delete(&StoreInventoryModel{})
	if result.Error != nil {
		return false, apperrors.Wrapf(result.Error, "删除库存失败(store=%d, isbn13=%s)", storeID, isbn13)
	}
	return result.RowsAffected > 0, nil
}

func toInventoryEntities(models []StoreInventoryModel) []*store.Inventory {
	list := make([]*store.Inventory, len(models))
	for i, m := range models {
		list[i] = &store.Inventory{StoreID: m.StoreID, ISBN13: m.ISBN13, Amount: m.Amount}
	}
	return list
}
