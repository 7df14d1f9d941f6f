package inventory

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/store"
)

// ListStoresUseCase 门店列表(供选择门店)
type ListStoresUseCase struct {
	storeService store.Service
}

// NewListStoresUseCase 创建门店列表用例
func NewListStoresUseCase(storeService store.Service) *ListStoresUseCase {
	return &ListStoresUseCase{storeService: storeService}
}

// StoreItem 门店DTO
type StoreItem struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Execute 按ID顺序返回全部门店
func (uc *ListStoresUseCase) Execute(ctx context.Context) ([]StoreItem, error) {
	stores, err := uc.storeService.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]StoreItem, len(stores))
	for i, s := range stores {
		items[i] = StoreItem{ID: s.ID, Name: s.Name, Address: s.Address}
	}
	return items, nil
}
