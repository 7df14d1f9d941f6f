package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	// List 查询全部作者(按ID排序)
	List(ctx context.Context) ([]*Author, error)

	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Create 创建作者并回填ID
	Create(ctx context.Context, author *Author) error

	// Update 更新作者
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者,返回是否有记录被删除
	Delete(ctx context.Context, id uint) (bool, error)
}
