package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类别（4xxxx为操作员输入问题，5xxxx为存储层故障）
// 2. Message是给操作员看的提示信息
// 3. Err是底层错误，只进日志
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装数据库等底层错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 操作员输入错误（序号越界、格式错误、业务规则校验失败），就地放弃当前操作
// - 5xxxx: 存储层错误（连接失败、约束冲突），直接终止程序

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误

	// 资源错误（40400-40499）
	ErrCodeNotFound          = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound      = 40401 // 图书不存在
	ErrCodeAuthorNotFound    = 40402 // 作者不存在
	ErrCodeStoreNotFound     = 40403 // 门店不存在
	ErrCodeInventoryNotFound = 40404 // 库存记录不存在
	ErrCodeOrderNotFound     = 40405 // 订单不存在
	ErrCodeCustomerNotFound  = 40406 // 顾客不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError  = 40000 // 业务错误(通用)
	ErrCodeNoBooksInStore = 40001 // 门店没有库存
	ErrCodeISBNDuplicate  = 40004 // ISBN已存在
	ErrCodeDuplicateEntry = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeInvalidOption = 40901 // 选项无效
)

// =========================================
// 预定义错误
// =========================================

var ErrInvalidOption = New(ErrCodeInvalidOption, "invalid option")

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: ErrCodeInternal, Message: "internal error", Err: err}
}

// IsClientError 判断是否为操作员输入导致的错误（4xxxx）
// 这类错误只放弃当前操作，其余错误视为致命错误
func IsClientError(err error) bool {
	if err == nil {
		return false
	}
	code := GetAppError(err).Code
	return code >= 40000 && code < 50000
}
