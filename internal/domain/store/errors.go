package store

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 门店与库存领域错误定义
var (
	// ErrStoreNotFound 门店不存在
	ErrStoreNotFound = apperrors.New(apperrors.ErrCodeStoreNotFound, "store not found")

	// ErrAddressDuplicate 门店地址重复
	ErrAddressDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "store address already exists")

	// ErrInventoryNotFound 门店没有这本书的库存
	ErrInventoryNotFound = apperrors.New(apperrors.ErrCodeInventoryNotFound, "book is not stocked in this store")

	// ErrNoBooksInStore 门店没有任何库存
	ErrNoBooksInStore = apperrors.New(apperrors.ErrCodeNoBooksInStore, "There are no books in the selected store")

	// ErrInvalidAmount 数量必须大于0
	ErrInvalidAmount = apperrors.New(apperrors.ErrCodeInvalidParams, "amount must be greater than 0")
)
