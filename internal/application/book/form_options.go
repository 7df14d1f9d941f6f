package book

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
)

// FormOptionsUseCase 新增/修改图书时可选择的作者、出版社、语种
type FormOptionsUseCase struct {
	authorRepo    author.Repository
	publisherRepo publisher.Repository
	languageRepo  language.Repository
}

// NewFormOptionsUseCase 创建选项查询用例
func NewFormOptionsUseCase(
	authorRepo author.Repository,
	publisherRepo publisher.Repository,
	languageRepo language.Repository,
) *FormOptionsUseCase {
	return &FormOptionsUseCase{authorRepo: authorRepo, publisherRepo: publisherRepo, languageRepo: languageRepo}
}

// Option 一个可选项
type Option struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// FormOptions 选项集合,各自按ID排序
type FormOptions struct {
	Authors    []Option `json:"authors"`
	Publishers []Option `json:"publishers"`
	Languages  []Option `json:"languages"`
}

// Execute 查询全部选项
func (uc *FormOptionsUseCase) Execute(ctx context.Context) (*FormOptions, error) {
	authors, err := uc.authorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	publishers, err := uc.publisherRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	languages, err := uc.languageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	opts := &FormOptions{
		Authors:    make([]Option, len(authors)),
		Publishers: make([]Option, len(publishers)),
		Languages:  make([]Option, len(languages)),
	}
	for i, a := range authors {
		opts.Authors[i] = Option{ID: a.ID, Label: a.FullName()}
	}
	for i, p := range publishers {
		opts.Publishers[i] = Option{ID: p.ID, Label: p.Name}
	}
	for i, l := range languages {
		opts.Languages[i] = Option{ID: l.ID, Label: l.Name}
	}
	return opts, nil
}
