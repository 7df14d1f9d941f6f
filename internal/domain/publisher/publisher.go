// Package publisher 出版社(只读参考数据,新增图书时选择)
package publisher

import (
	"context"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Publisher 出版社实体
type Publisher struct {
	ID      uint
	Name    string
	Address string
}

// ErrPublisherNotFound 出版社不存在
var ErrPublisherNotFound = apperrors.New(apperrors.ErrCodeNotFound, "publisher not found")

// Repository 出版社仓储接口
type Repository interface {
	List(ctx context.Context) ([]*Publisher, error)
	FindByID(ctx context.Context, id uint) (*Publisher, error)
	Create(ctx context.Context, p *Publisher) error
	Update(ctx context.Context, p *Publisher) error
	Delete(ctx context.Context, id uint) (bool, error)
}
