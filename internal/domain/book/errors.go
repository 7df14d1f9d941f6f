package book

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "isbn13 already exists")

	// ErrInvalidISBN ISBN长度不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "isbn13 must be exactly 13 characters")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "price must be greater than 0")
)
