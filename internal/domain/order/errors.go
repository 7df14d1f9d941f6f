package order

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "order not found")

	// ErrCustomerNotFound 顾客不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "customer not found")

	// ErrOrderItemNotFound 订单明细不存在
	ErrOrderItemNotFound = apperrors.New(apperrors.ErrCodeNotFound, "order item not found")

	// ErrInvalidAmount 购买数量不合法
	ErrInvalidAmount = apperrors.New(apperrors.ErrCodeInvalidParams, "amount must be greater than 0")
)
