package author

import (
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "author not found")
)
