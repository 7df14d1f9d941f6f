package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb/rdbtest"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/mq/mqtest"
)

const potter = "9780747532699"

type env struct {
	db      *gorm.DB
	service book.Service
	events  *mqtest.Recorder
	opts    *appbook.FormOptions
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	db := rdbtest.NewDB(t)

	fixture, err := seed.ParseFixture(nil)
	require.NoError(t, err)
	_, err = seed.NewSeedUseCase(rdb.NewSeedRepositories(db), rdb.NewTxManager(db), logger.Nop()).Execute(ctx, fixture)
	require.NoError(t, err)

	opts, err := appbook.NewFormOptionsUseCase(
		rdb.NewAuthorRepository(db), rdb.NewPublisherRepository(db), rdb.NewLanguageRepository(db),
	).Execute(ctx)
	require.NoError(t, err)

	return &env{
		db:      db,
		service: book.NewService(rdb.NewBookRepository(db)),
		events:  &mqtest.Recorder{},
		opts:    opts,
	}
}

func (e *env) addUseCase() *appbook.AddBookUseCase {
	return appbook.NewAddBookUseCase(e.service,
		rdb.NewAuthorRepository(e.db), rdb.NewPublisherRepository(e.db), rdb.NewLanguageRepository(e.db),
		e.events, logger.Nop())
}

func (e *env) request(isbn13, price string) appbook.BookRequest {
	return appbook.BookRequest{
		ISBN13:        isbn13,
		Title:         "The Go Programming Language",
		Price:         decimal.RequireFromString(price),
		DatePublished: time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC),
		AuthorID:      e.opts.Authors[0].ID,
		PublisherID:   e.opts.Publishers[0].ID,
		LanguageID:    e.opts.Languages[0].ID,
	}
}

func TestFormOptionsUseCase(t *testing.T) {
	e := newEnv(t)
	require.Len(t, e.opts.Authors, 2)
	assert.Equal(t, "Joanne Rowling", e.opts.Authors[0].Label)
	assert.Equal(t, "Bloomsbury", e.opts.Publishers[0].Label)
	assert.Equal(t, "English", e.opts.Languages[0].Label)
}

func TestListBooksUseCase(t *testing.T) {
	e := newEnv(t)
	uc := appbook.NewListBooksUseCase(e.service,
		rdb.NewAuthorRepository(e.db), rdb.NewPublisherRepository(e.db), rdb.NewLanguageRepository(e.db))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.List, 2)

	first := resp.List[0]
	assert.Equal(t, potter, first.ISBN13)
	assert.Equal(t, "Joanne", first.AuthorFirstName)
	assert.Equal(t, "Rowling", first.AuthorLastName)
	assert.Equal(t, "Bloomsbury", first.Publisher)
	assert.Equal(t, "English", first.Language)
	assert.Equal(t, "12.99", first.Price.StringFixed(2))
	require.NotNil(t, first.DatePublished)
	assert.Equal(t, "1997-06-26", first.DatePublished.Format("2006-01-02"))
}

func TestAddBookUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("ISBN校验", func(t *testing.T) {
		e := newEnv(t)
		uc := e.addUseCase()

		assert.NoError(t, uc.ValidateISBN(ctx, "9780134190440"))
		assert.ErrorIs(t, uc.ValidateISBN(ctx, "978013419044"), book.ErrInvalidISBN)
		assert.ErrorIs(t, uc.ValidateISBN(ctx, potter), book.ErrISBNDuplicate)
		assert.True(t, apperrors.IsClientError(uc.ValidateISBN(ctx, potter)))
	})

	t.Run("新增成功并发布事件", func(t *testing.T) {
		e := newEnv(t)
		require.NoError(t, e.addUseCase().Execute(ctx, e.request("9780134190440", "39.99")))

		b, err := e.service.GetBook(ctx, "9780134190440")
		require.NoError(t, err)
		assert.Equal(t, "39.99", b.Price.StringFixed(2))
		assert.Equal(t, []string{appbook.EventBookAdded}, e.events.RoutingKeys())
	})

	t.Run("价格必须大于0", func(t *testing.T) {
		e := newEnv(t)
		err := e.addUseCase().Execute(ctx, e.request("9780134190440", "0"))
		assert.ErrorIs(t, err, book.ErrInvalidPrice)

		_, err = e.service.GetBook(ctx, "9780134190440")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Empty(t, e.events.RoutingKeys())
	})

	t.Run("作者不存在", func(t *testing.T) {
		e := newEnv(t)
		req := e.request("9780134190440", "10")
		req.AuthorID = 999
		assert.ErrorIs(t, e.addUseCase().Execute(ctx, req), author.ErrAuthorNotFound)
	})
}

func TestEditBookUseCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := appbook.NewEditBookUseCase(e.service,
		rdb.NewAuthorRepository(e.db), rdb.NewPublisherRepository(e.db), rdb.NewLanguageRepository(e.db),
		e.events, logger.Nop())

	req := e.request(potter, "15.50")
	req.Title = "Harry Potter 1"
	req.AuthorID = e.opts.Authors[1].ID
	require.NoError(t, uc.Execute(ctx, req))

	b, err := e.service.GetBook(ctx, potter)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter 1", b.Title)
	assert.Equal(t, e.opts.Authors[1].ID, b.AuthorID)
	assert.Equal(t, "15.50", b.Price.StringFixed(2))

	err = uc.Execute(ctx, e.request("0000000000000", "1"))
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Equal(t, []string{appbook.EventBookEdited}, e.events.RoutingKeys())
}

func TestRemoveBookUseCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := appbook.NewRemoveBookUseCase(e.service, e.events, logger.Nop())

	t.Run("仍有库存的图书删除失败,是存储层错误", func(t *testing.T) {
		_, err := uc.Execute(ctx, potter)
		require.Error(t, err)
		assert.False(t, apperrors.IsClientError(err))
	})

	t.Run("没有引用的图书可以删除", func(t *testing.T) {
		require.NoError(t, e.addUseCase().Execute(ctx, e.request("9780134190440", "10")))

		removed, err := uc.Execute(ctx, "9780134190440")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = uc.Execute(ctx, "9780134190440")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	assert.Equal(t, []string{appbook.EventBookAdded, appbook.EventBookRemoved}, e.events.RoutingKeys())
}
