package inventory

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const tracerName = "bookstore-admin/application/inventory"

// ListInventoryUseCase 库存列表用例
// 门店 x 库存 x 图书三表在内存中关联,按门店ID分组,没有库存的门店不输出
type ListInventoryUseCase struct {
	storeService store.Service
	bookRepo     book.Repository
}

// NewListInventoryUseCase 创建库存列表用例
func NewListInventoryUseCase(storeService store.Service, bookRepo book.Repository) *ListInventoryUseCase {
	return &ListInventoryUseCase{storeService: storeService, bookRepo: bookRepo}
}

// InventoryLine 一行库存
type InventoryLine struct {
	ISBN13 string `json:"isbn13"`
	Title  string `json:"title"`
	Amount int    `json:"amount"`
}

// StoreInventory 一个门店及其库存
type StoreInventory struct {
	StoreID   uint            `json:"store_id"`
	StoreName string          `json:"store_name"`
	Books     []InventoryLine `json:"books"`
}

// ListInventoryResponse 库存列表响应DTO
type ListInventoryResponse struct {
	Stores []StoreInventory `json:"stores"`
}

// Execute 执行库存列表查询
func (uc *ListInventoryUseCase) Execute(ctx context.Context) (resp *ListInventoryResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListInventory")
	defer func() { tracing.EndSpan(span, err) }()

	// 1. 三张表各查一次
	stores, err := uc.storeService.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := uc.storeService.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	titles, err := bookTitles(ctx, uc.bookRepo)
	if err != nil {
		return nil, err
	}

	// 2. 库存按门店分组(库存行已按store_id, isbn13排序)
	byStore := make(map[uint][]InventoryLine)
	for _, row := range rows {
		byStore[row.StoreID] = append(byStore[row.StoreID], InventoryLine{
			ISBN13: row.ISBN13,
			Title:  titles[row.ISBN13],
			Amount: row.Amount,
		})
	}

	// 3. 按门店顺序输出
	resp = &ListInventoryResponse{Stores: make([]StoreInventory, 0, len(byStore))}
	for _, s := range stores {
		lines, ok := byStore[s.ID]
		if !ok {
			continue
		}
		resp.Stores = append(resp.Stores, StoreInventory{StoreID: s.ID, StoreName: s.Name, Books: lines})
	}
	return resp, nil
}

// bookTitles ISBN → 书名
func bookTitles(ctx context.Context, repo book.Repository) (map[string]string, error) {
	books, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(books))
	for _, b := range books {
		titles[b.ISBN13] = b.Title
	}
	return titles, nil
}
