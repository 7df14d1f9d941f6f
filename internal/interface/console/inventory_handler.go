package console

import (
	"context"
	"errors"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/application/inventory"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
)

// InventoryHandler 门店库存菜单处理器
type InventoryHandler struct {
	console                    *Console
	listInventoryUseCase       *inventory.ListInventoryUseCase
	listStoresUseCase          *inventory.ListStoresUseCase
	booksInStoreUseCase        *inventory.BooksInStoreUseCase
	addBookToStoreUseCase      *inventory.AddBookToStoreUseCase
	removeBookFromStoreUseCase *inventory.RemoveBookFromStoreUseCase
	listBooksUseCase           *appbook.ListBooksUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	console *Console,
	listInventoryUseCase *inventory.ListInventoryUseCase,
	listStoresUseCase *inventory.ListStoresUseCase,
	booksInStoreUseCase *inventory.BooksInStoreUseCase,
	addBookToStoreUseCase *inventory.AddBookToStoreUseCase,
	removeBookFromStoreUseCase *inventory.RemoveBookFromStoreUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		console:                    console,
		listInventoryUseCase:       listInventoryUseCase,
		listStoresUseCase:          listStoresUseCase,
		booksInStoreUseCase:        booksInStoreUseCase,
		addBookToStoreUseCase:      addBookToStoreUseCase,
		removeBookFromStoreUseCase: removeBookFromStoreUseCase,
		listBooksUseCase:           listBooksUseCase,
	}
}

// ListInventory 按门店列出库存
func (h *InventoryHandler) ListInventory(ctx context.Context) error {
	resp, err := h.listInventoryUseCase.Execute(ctx)
	if err != nil {
		return err
	}

	for _, s := range resp.Stores {
		h.console.Println("Store: " + s.StoreName)
		for _, line := range s.Books {
			h.console.Printf("\tBook: %s | ISBN13: %s | Amount: %d\n", line.Title, line.ISBN13, line.Amount)
		}
		h.console.Println()
	}
	return h.console.Wait()
}

// AddBookToStore 入库:门店 -> 图书 -> 数量
func (h *InventoryHandler) AddBookToStore(ctx context.Context) error {
	// 1. 选择门店
	storeID, err := h.selectStore(ctx)
	if err != nil {
		return err
	}

	// 2. 选择图书
	books, err := h.listBooksUseCase.Execute(ctx)
	if err != nil {
		return err
	}
	labels := make([]string, len(books.List))
	for i, b := range books.List {
		labels[i] = b.Title
	}
	idx, err := h.console.Select(PromptSelectBook, labels)
	if err != nil {
		return err
	}

	// 3. 输入数量
	amount, err := h.console.ReadAmount()
	if err != nil {
		return err
	}

	// 4. 调用应用层用例
	resp, err := h.addBookToStoreUseCase.Execute(ctx, inventory.AddBookToStoreRequest{
		StoreID: storeID,
		ISBN13:  books.List[idx].ISBN13,
		Amount:  amount,
	})
	if err != nil {
		return err
	}

	// 累加已有库存行时不提示
	if !resp.Created {
		return nil
	}
	return h.console.Done(MsgBookAddedToStore)
}

// RemoveBookFromStore 出库:门店 -> 该门店的图书 -> 数量
func (h *InventoryHandler) RemoveBookFromStore(ctx context.Context) error {
	// 1. 选择门店
	storeID, err := h.selectStore(ctx)
	if err != nil {
		return err
	}

	// 2. 门店没有库存时提示后返回菜单
	inv, err := h.booksInStoreUseCase.Execute(ctx, storeID)
	if errors.Is(err, store.ErrNoBooksInStore) {
		h.console.Println(MsgNoBooksInStore)
		return h.console.Wait()
	}
	if err != nil {
		return err
	}

	// 3. 只在该门店的库存里选择图书
	h.console.Printf(MsgBooksInStore+"\n", inv.StoreName)
	labels := make([]string, len(inv.Books))
	for i, line := range inv.Books {
		labels[i] = line.Title
	}
	idx, err := h.console.Select(PromptSelectBook, labels)
	if err != nil {
		return err
	}

	// 4. 输入数量
	amount, err := h.console.ReadAmount()
	if err != nil {
		return err
	}

	if _, err := h.removeBookFromStoreUseCase.Execute(ctx, inventory.RemoveBookFromStoreRequest{
		StoreID: storeID,
		ISBN13:  inv.Books[idx].ISBN13,
		Amount:  amount,
	}); err != nil {
		return err
	}
	return h.console.Done(MsgBookRemovedFromStore)
}

func (h *InventoryHandler) selectStore(ctx context.Context) (uint, error) {
	stores, err := h.listStoresUseCase.Execute(ctx)
	if err != nil {
		return 0, err
	}
	labels := make([]string, len(stores))
	for i, s := range stores {
		labels[i] = s.Name
	}
	idx, err := h.console.Select(PromptSelectStore, labels)
	if err != nil {
		return 0, err
	}
	return stores[idx].ID, nil
}
