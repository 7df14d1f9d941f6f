package rdb

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 主键冲突转换为book.ErrISBNDuplicate
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context) (_ []*book.Book, err error) {
	defer observe("book", "list")(&err)

	var models []BookModel
	if err = getDB(ctx, r.db).Order("isbn13").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn13 string) (_ *book.Book, err error) {
	defer observe("book", "find")(&err)

	var model BookModel
	err = getDB(ctx, r.db).Where("isbn13 = ?", isbn13).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) (err error) {
	defer observe("book", "create")(&err)

	model := toBookModel(b)
	if err = getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}
	return nil
}

// Update 更新除ISBN外的全部字段
// 使用map显式列出列,零值也会写入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) (err error) {
	defer observe("book", "update")(&err)

	model := toBookModel(b)
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("isbn13 = ?", b.ISBN13).
		Updates(map[string]interface{}{
			"title":          model.Title,
			"language_id":    model.LanguageID,
			"price":          model.Price,
			"date_published": model.DatePublished,
			"author_id":      model.AuthorID,
			"publisher_id":   model.PublisherID,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 删除图书
// 仍被库存或订单明细引用时外键约束失败,作为存储层错误返回
func (r *bookRepository) Delete(ctx context.Context, isbn13 string) (_ bool, err error) {
	defer observe("book", "delete")(&err)

	result := getDB(ctx, r.db).Where("isbn13 = ?", isbn13).Delete(&BookModel{})
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除图书失败")
	}
	return result.RowsAffected > 0, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ISBN13:        b.ISBN13,
		Title:         b.Title,
		LanguageID:    b.LanguageID,
		Price:         decimal.NewNullDecimal(b.Price),
		DatePublished: b.DatePublished,
		AuthorID:      b.AuthorID,
		PublisherID:   b.PublisherID,
	}
}

// toBookEntity GORM模型 → 领域实体
// 价格为NULL时按0处理
func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ISBN13:        m.ISBN13,
		Title:         m.Title,
		DatePublished: m.DatePublished,
		AuthorID:      m.AuthorID,
		PublisherID:   m.PublisherID,
		LanguageID:    m.LanguageID,
	}
	if m.Price.Valid {
		b.Price = m.Price.Decimal
	}
	return b
}
