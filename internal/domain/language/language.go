// Package language 图书语种(只读参考数据,新增图书时选择)
package language

import (
	"context"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Language 语种实体
type Language struct {
	ID   uint
	Name string
}

// ErrLanguageNotFound 语种不存在
var ErrLanguageNotFound = apperrors.New(apperrors.ErrCodeNotFound, "language not found")

// Repository 语种仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Language, error)
	FindByID(ctx context.Context, id uint) (*Language, error)
	Create(ctx context.Context, l *Language) error
	Update(ctx context.Context, l *Language) error
	Delete(ctx context.Context, id uint) (bool, error)
}
