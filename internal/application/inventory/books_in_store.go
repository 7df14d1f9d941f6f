package inventory

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// BooksInStoreUseCase 某门店当前有库存的图书(出库时选择图书)
type BooksInStoreUseCase struct {
	storeService store.Service
	bookRepo     book.Repository
}

// NewBooksInStoreUseCase 创建门店图书用例
func NewBooksInStoreUseCase(storeService store.Service, bookRepo book.Repository) *BooksInStoreUseCase {
	return &BooksInStoreUseCase{storeService: storeService, bookRepo: bookRepo}
}

// Execute 门店没有任何库存时返回store.ErrNoBooksInStore
func (uc *BooksInStoreUseCase) Execute(ctx context.Context, storeID uint) (resp *StoreInventory, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BooksInStore")
	defer func() { tracing.EndSpan(span, err) }()

	s, err := uc.storeService.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.storeService.ListStoreInventory(ctx, storeID)
	if err != nil {
		return nil, err
	}
	titles, err := bookTitles(ctx, uc.bookRepo)
	if err != nil {
		return nil, err
	}

	resp = &StoreInventory{StoreID: s.ID, StoreName: s.Name, Books: make([]InventoryLine, len(rows))}
	for i, row := range rows {
		resp.Books[i] = InventoryLine{ISBN13: row.ISBN13, Title: titles[row.ISBN13], Amount: row.Amount}
	}
	return resp, nil
}
