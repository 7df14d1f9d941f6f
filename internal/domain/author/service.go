package author

import (
	"context"
	"time"
)

// Service 作者领域服务接口
type Service interface {
	AddAuthor(ctx context.Context, firstName, lastName string, birthdate time.Time) (*Author, error)
	EditAuthor(ctx context.Context, id uint, firstName, lastName string, birthdate time.Time) (*Author, error)
	RemoveAuthor(ctx context.Context, id uint) (bool, error)
	GetAuthor(ctx context.Context, id uint) (*Author, error)
	ListAuthors(ctx context.Context) ([]*Author, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddAuthor 新增作者
func (s *service) AddAuthor(ctx context.Context, firstName, lastName string, birthdate time.Time) (*Author, error) {
	a := NewAuthor(firstName, lastName, birthdate)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// EditAuthor 修改作者
func (s *service) EditAuthor(ctx context.Context, id uint, firstName, lastName string, birthdate time.Time) (*Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Rename(firstName, lastName, birthdate)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// RemoveAuthor 删除作者
// 仍有图书引用该作者时由数据库外键拒绝
func (s *service) RemoveAuthor(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}
