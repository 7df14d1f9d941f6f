package author

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const tracerName = "bookstore-admin/application/author"

// 作者变更事件
const (
	EventAuthorAdded   = "author.added"
	EventAuthorEdited  = "author.edited"
	EventAuthorRemoved = "author.removed"
)

// AuthorDTO 作者DTO
type AuthorDTO struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

func toDTO(a *author.Author) AuthorDTO {
	return AuthorDTO{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Birthdate: a.Birthdate}
}

// AuthorRequest 新增/修改作者请求DTO
type AuthorRequest struct {
	ID        uint // 修改时使用
	FirstName string
	LastName  string
	Birthdate time.Time
}

// ListAuthorsUseCase 作者列表用例
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// Execute 按ID顺序返回全部作者
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) (list []AuthorDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListAuthors")
	defer func() { tracing.EndSpan(span, err) }()

	authors, err := uc.authorService.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	list = make([]AuthorDTO, len(authors))
	for i, a := range authors {
		list[i] = toDTO(a)
	}
	return list, nil
}

// AddAuthorUseCase 新增作者用例
type AddAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
	log           zerolog.Logger
}

// NewAddAuthorUseCase 创建新增作者用例
func NewAddAuthorUseCase(authorService author.Service, eventPublisher mq.EventPublisher, log zerolog.Logger) *AddAuthorUseCase {
	return &AddAuthorUseCase{authorService: authorService, publisher: eventPublisher, log: log}
}

// Execute 执行新增,返回带ID的作者
func (uc *AddAuthorUseCase) Execute(ctx context.Context, req AuthorRequest) (dto *AuthorDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	a, err := uc.authorService.AddAuthor(ctx, req.FirstName, req.LastName, req.Birthdate)
	if err != nil {
		return nil, err
	}

	out := toDTO(a)
	mq.PublishEvent(ctx, uc.publisher, uc.log, EventAuthorAdded, out)
	return &out, nil
}

// EditAuthorUseCase 修改作者用例
type EditAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
	log           zerolog.Logger
}

// NewEditAuthorUseCase 创建修改作者用例
func NewEditAuthorUseCase(authorService author.Service, eventPublisher mq.EventPublisher, log zerolog.Logger) *EditAuthorUseCase {
	return &EditAuthorUseCase{authorService: authorService, publisher: eventPublisher, log: log}
}

// Execute 执行修改
func (uc *EditAuthorUseCase) Execute(ctx context.Context, req AuthorRequest) (dto *AuthorDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "EditAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	a, err := uc.authorService.EditAuthor(ctx, req.ID, req.FirstName, req.LastName, req.Birthdate)
	if err != nil {
		return nil, err
	}

	out := toDTO(a)
	mq.PublishEvent(ctx, uc.publisher, uc.log, EventAuthorEdited, out)
	return &out, nil
}

// RemoveAuthorUseCase 删除作者用例
// 作者仍有图书时外键约束失败,属于存储层错误
type RemoveAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
	log           zerolog.Logger
}

// NewRemoveAuthorUseCase 创建删除作者用例
func NewRemoveAuthorUseCase(authorService author.Service, eventPublisher mq.EventPublisher, log zerolog.Logger) *RemoveAuthorUseCase {
	return &RemoveAuthorUseCase{authorService: authorService, publisher: eventPublisher, log: log}
}

// Execute 执行删除,返回是否删除了记录
func (uc *RemoveAuthorUseCase) Execute(ctx context.Context, id uint) (removed bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RemoveAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	removed, err = uc.authorService.RemoveAuthor(ctx, id)
	if err != nil || !removed {
		return removed, err
	}

	mq.PublishEvent(ctx, uc.publisher, uc.log, EventAuthorRemoved, AuthorDTO{ID: id})
	return true, nil
}
