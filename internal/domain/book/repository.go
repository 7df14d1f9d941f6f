package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 每个写操作都是一条立即提交的语句,没有变更跟踪
type Repository interface {
	// List 查询全部图书(按ISBN排序)
	List(ctx context.Context) ([]*Book, error)

	// FindByISBN 根据ISBN查找图书,不存在返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn13 string) (*Book, error)

	// Create 创建图书,ISBN重复返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// Update 更新除ISBN外的全部字段
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,返回是否有记录被删除
	Delete(ctx context.Context, isbn13 string) (bool, error)
}
