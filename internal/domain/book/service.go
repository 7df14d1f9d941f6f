package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(ISBN长度与唯一性、价格)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// ValidateNewISBN 校验新ISBN:正好13个字符,且不与已有图书重复
	ValidateNewISBN(ctx context.Context, isbn13 string) error

	// AddBook 新增图书
	AddBook(ctx context.Context, isbn13 string, d Details) (*Book, error)

	// EditBook 修改图书信息(ISBN不可修改)
	EditBook(ctx context.Context, isbn13 string, d Details) (*Book, error)

	// RemoveBook 删除图书
	RemoveBook(ctx context.Context, isbn13 string) (bool, error)

	// GetBook 根据ISBN获取图书
	GetBook(ctx context.Context, isbn13 string) (*Book, error)

	// ListBooks 查询全部图书
	ListBooks(ctx context.Context) ([]*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ValidateNewISBN 校验新ISBN
func (s *service) ValidateNewISBN(ctx context.Context, isbn13 string) error {
	// 1. 长度校验
	if err := ValidateISBN13(isbn13); err != nil {
		return err
	}

	// 2. 唯一性校验
	_, err := s.repo.FindByISBN(ctx, isbn13)
	if err == nil {
		return ErrISBNDuplicate
	}
	if !errors.Is(err, ErrBookNotFound) {
		return err
	}
	return nil
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, isbn13 string, d Details) (*Book, error) {
	// 1. ISBN校验(长度+唯一)
	if err := s.ValidateNewISBN(ctx, isbn13); err != nil {
		return nil, err
	}

	// 2. 创建实体(价格校验)
	b, err := NewBook(isbn13, d)
	if err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// EditBook 修改图书信息
func (s *service) EditBook(ctx context.Context, isbn13 string, d Details) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByISBN(ctx, isbn13)
	if err != nil {
		return nil, err
	}

	// 2. 更新字段
	if err := b.Apply(d); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveBook 删除图书
func (s *service) RemoveBook(ctx context.Context, isbn13 string) (bool, error) {
	return s.repo.Delete(ctx, isbn13)
}

// GetBook 根据ISBN获取图书
func (s *service) GetBook(ctx context.Context, isbn13 string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn13)
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}
