package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// authorRepository 作者仓储实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// List 查询全部作者(按ID排序)
func (r *authorRepository) List(ctx context.Context) (_ []*author.Author, err error) {
	defer observe("author", "list")(&err)

	var models []AuthorModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (_ *author.Author, err error) {
	defer observe("author", "find")(&err)

	var model AuthorModel
	if err = getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return toAuthorEntity(&model), nil
}

// Create 创建作者并回填自增ID
func (r *authorRepository) Create(ctx context.Context, a *author.Author) (err error) {
	defer observe("author", "create")(&err)

	model := &AuthorModel{FirstName: a.FirstName, LastName: a.LastName, Birthdate: a.Birthdate}
	if err = getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}
	a.ID = model.ID
	return nil
}

// Update 更新作者
func (r *authorRepository) Update(ctx context.Context, a *author.Author) (err error) {
	defer observe("author", "update")(&err)

	result := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"first_name": a.FirstName,
			"last_name":  a.LastName,
			"birthdate":  a.Birthdate,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Delete 删除作者
// 仍有图书引用时外键约束失败,作为存储层错误返回
func (r *authorRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("author", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除作者失败")
	}
	return result.RowsAffected > 0, nil
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Birthdate: m.Birthdate,
	}
}
