package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 出版社和语种是新增图书时选择的参考数据,控制台只读取,
// 写操作供seed命令和测试使用

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) List(ctx context.Context) (_ []*publisher.Publisher, err error) {
	defer observe("publisher", "list")(&err)

	var models []PublisherModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询出版社列表失败")
	}

	list := make([]*publisher.Publisher, len(models))
	for i, m := range models {
		list[i] = &publisher.Publisher{ID: m.ID, Name: m.Name, Address: m.Address}
	}
	return list, nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (_ *publisher.Publisher, err error) {
	defer observe("publisher", "find")(&err)

	var m PublisherModel
	if err = getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}
	return &publisher.Publisher{ID: m.ID, Name: m.Name, Address: m.Address}, nil
}

func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) (err error) {
	defer observe("publisher", "create")(&err)

	m := &PublisherModel{Name: p.Name, Address: p.Address}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrap(err, "创建出版社失败")
	}
	p.ID = m.ID
	return nil
}

func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) (err error) {
	defer observe("publisher", "update")(&err)

	result := getDB(ctx, r.db).Model(&PublisherModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{"name": p.Name, "address": p.Address})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新出版社失败")
	}
	if result.RowsAffected == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func (r *publisherRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("publisher", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&PublisherModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除出版社失败")
	}
	return result.RowsAffected > 0, nil
}

type languageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository 创建语种仓储
func NewLanguageRepository(db *gorm.DB) language.Repository {
	return &languageRepository{db: db}
}

func (r *languageRepository) List(ctx context.Context) (_ []*language.Language, err error) {
	defer observe("language", "list")(&err)

	var models []LanguageModel
	if err = getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询语种列表失败")
	}

	list := make([]*language.Language, len(models))
	for i, m := range models {
		list[i] = &language.Language{ID: m.ID, Name: m.Name}
	}
	return list, nil
}

func (r *languageRepository) FindByID(ctx context.Context, id uint) (_ *language.Language, err error) {
	defer observe("language", "find")(&err)

	var m LanguageModel
	if err = getDB(ctx, r.db).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, language.ErrLanguageNotFound
		}
		return nil, apperrors.Wrap(err, "查询语种失败")
	}
	return &language.Language{ID: m.ID, Name: m.Name}, nil
}

func (r *languageRepository) Create(ctx context.Context, l *language.Language) (err error) {
	defer observe("language", "create")(&err)

	m := &LanguageModel{Name: l.Name}
	if err = getDB(ctx, r.db).Create(m).Error; err != nil {
		return apperrors.Wrap(err, "创建语种失败")
	}
	l.ID = m.ID
	return nil
}

func (r *languageRepository) Update(ctx context.Context, l *language.Language) (err error) {
	defer observe("language", "update")(&err)

	result := getDB(ctx, r.db).Model(&LanguageModel{}).
		Where("id = ?", l.ID).
		Update("name", l.Name)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新语种失败")
	}
	if result.RowsAffected == 0 {
		return language.ErrLanguageNotFound
	}
	return nil
}

func (r *languageRepository) Delete(ctx context.Context, id uint) (_ bool, err error) {
	defer observe("language", "delete")(&err)

	result := getDB(ctx, r.db).Delete(&LanguageModel{}, id)
	if result.Error != nil {
		return false, apperrors.Wrap(result.Error, "删除语种失败")
	}
	return result.RowsAffected > 0, nil
}
