package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/gorm"

	appauthor "github.com/xiebiao/bookstore-admin/internal/application/author"
	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/application/inventory"
	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb/rdbtest"
	"github.com/xiebiao/bookstore-admin/internal/interface/console"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/mq/mqtest"
)

const (
	potter = "9780747532699"
	pippi  = "9789129688313"
)

// harness 演示数据之上的完整菜单
//
//	门店: 1 Main Street Books(potter x5, pippi x2), 2 Harbour Books(potter x1)
//	图书(按ISBN排序): 1 potter, 2 pippi
//	作者: 1 Joanne Rowling, 2 Astrid Lindgren
type harness struct {
	db     *gorm.DB
	events *mqtest.Recorder
	log    zerolog.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := rdbtest.NewDB(t)

	fixture, err := seed.ParseFixture(nil)
	require.NoError(t, err)
	_, err = seed.NewSeedUseCase(rdb.NewSeedRepositories(db), rdb.NewTxManager(db), logger.Nop()).
		Execute(context.Background(), fixture)
	require.NoError(t, err)

	return &harness{db: db, events: &mqtest.Recorder{}, log: logger.Nop()}
}

// run 用给定输入运行菜单,返回输出和Run的错误
func (h *harness) run(t *testing.T, input string) (string, error) {
	t.Helper()
	log := h.log

	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out, config.UIConfig{Pause: true})

	bookRepo := rdb.NewBookRepository(h.db)
	authorRepo := rdb.NewAuthorRepository(h.db)
	publisherRepo := rdb.NewPublisherRepository(h.db)
	languageRepo := rdb.NewLanguageRepository(h.db)
	bookService := book.NewService(bookRepo)
	authorService := author.NewService(authorRepo)
	storeService := store.NewService(rdb.NewStoreRepository(h.db), rdb.NewInventoryRepository(h.db))

	listBooks := appbook.NewListBooksUseCase(bookService, authorRepo, publisherRepo, languageRepo)
	inv := console.NewInventoryHandler(c,
		inventory.NewListInventoryUseCase(storeService, bookRepo),
		inventory.NewListStoresUseCase(storeService),
		inventory.NewBooksInStoreUseCase(storeService, bookRepo),
		inventory.NewAddBookToStoreUseCase(storeService, bookRepo, h.events, log),
		inventory.NewRemoveBookFromStoreUseCase(storeService, h.events, log),
		listBooks,
	)
	books := console.NewBookHandler(c,
		listBooks,
		appbook.NewFormOptionsUseCase(authorRepo, publisherRepo, languageRepo),
		appbook.NewAddBookUseCase(bookService, authorRepo, publisherRepo, languageRepo, h.events, log),
		appbook.NewEditBookUseCase(bookService, authorRepo, publisherRepo, languageRepo, h.events, log),
		appbook.NewRemoveBookUseCase(bookService, h.events, log),
	)
	authors := console.NewAuthorHandler(c,
		appauthor.NewListAuthorsUseCase(authorService),
		appauthor.NewAddAuthorUseCase(authorService, h.events, log),
		appauthor.NewEditAuthorUseCase(authorService, h.events, log),
		appauthor.NewRemoveAuthorUseCase(authorService, h.events, log),
	)

	err := console.NewMenu(c, inv, books, authors, log).Run(context.Background())
	return out.String(), err
}

func (h *harness) amount(t *testing.T, storeID uint, isbn13 string) int {
	t.Helper()
	var m rdb.StoreInventoryModel
	err := h.db.Where("store_id = ? AND isbn13 = ?", storeID, isbn13).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return m.Amount
}

func (h *harness) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, h.db.Model(model).Count(&n).Error)
	return n
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenu_Navigation(t *testing.T) {
	h := newHarness(t)

	t.Run("显示全部选项", func(t *testing.T) {
		out, err := h.run(t, script("12"))
		require.NoError(t, err)
		assert.Contains(t, out, "=== Bookstore Database Admin Tools ===\n1. List inventory\n")
		assert.Contains(t, out, "11. Remove Author\n12. Exit\n")
		assert.Contains(t, out, "\nSelect an option: ")
	})

	t.Run("无法识别的输入重新显示菜单", func(t *testing.T) {
		out, err := h.run(t, script("abc", "  13 ", "12"))
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "12. Exit"))
		assert.NotContains(t, out, "Invalid Option")
	})

	t.Run("输入两端空白被忽略", func(t *testing.T) {
		_, err := h.run(t, script("  12  "))
		require.NoError(t, err)
	})

	t.Run("输入结束时退出", func(t *testing.T) {
		_, err := h.run(t, "")
		require.NoError(t, err)

		// 操作中途结束也一样
		_, err = h.run(t, script("4", "1"))
		require.NoError(t, err)
		assert.Equal(t, 5, h.amount(t, 1, potter))
	})
}

func TestMenu_Listings(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, script("1", "", "2", "", "3", "", "12"))
	require.NoError(t, err)

	assert.Contains(t, out, "Store: Main Street Books\n"+
		"\tBook: Harry Potter and the Philosopher's Stone | ISBN13: 9780747532699 | Amount: 5\n"+
		"\tBook: Pippi Långstrump | ISBN13: 9789129688313 | Amount: 2\n\n")
	assert.Contains(t, out, "Store: Harbour Books\n"+
		"\tBook: Harry Potter and the Philosopher's Stone | ISBN13: 9780747532699 | Amount: 1\n\n")

	assert.Contains(t, out, "===Harry Potter and the Philosopher's Stone===\n"+
		"\tAuthor: Joanne Rowling\n"+
		"\tISBN13: 9780747532699\n"+
		"\tPrice: 12.99\n"+
		"\tLanguage: English\n"+
		"\tPublisher: Bloomsbury\n"+
		"\tDate published: 1997-06-26\n\n")
	assert.Contains(t, out, "\tPrice: 149.00\n")

	assert.Contains(t, out, "===Astrid Lindgren===\n\tBirthdate: 1907-11-14\n\n")
	assert.Equal(t, 3, strings.Count(out, "Press any key to continue"))
}

func TestMenu_StoreScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Main St没有库存,测试图书ISBN排在最前面
	mainSt := &store.Store{Name: "Main St", Address: "2 Main St"}
	require.NoError(t, rdb.NewStoreRepository(h.db).Create(ctx, mainSt))
	b, err := book.NewBook("9780000000001", book.Details{
		Title: "Test Book", Price: decimal.RequireFromString("1.00"),
		DatePublished: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:      1, PublisherID: 1, LanguageID: 1,
	})
	require.NoError(t, err)
	require.NoError(t, rdb.NewBookRepository(h.db).Create(ctx, b))

	t.Run("入库5本创建库存行", func(t *testing.T) {
		out, err := h.run(t, script("4", "3", "1", "5", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "1. Main Street Books\n2. Harbour Books\n3. Main St\n")
		assert.Contains(t, out, "\nBook added to store.\n")
		assert.Equal(t, 5, h.amount(t, mainSt.ID, b.ISBN13))
	})

	t.Run("出库5本删除库存行", func(t *testing.T) {
		out, err := h.run(t, script("5", "3", "1", "5", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "Books in store Main St:\n1. Test Book\n")
		assert.Contains(t, out, "\nBook removed from store\n")
		assert.Equal(t, 0, h.amount(t, mainSt.ID, b.ISBN13))
	})

	t.Run("门店没有库存时提示", func(t *testing.T) {
		before := h.count(t, &rdb.StoreInventoryModel{})

		out, err := h.run(t, script("5", "3", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "There are no books in the selected store\nPress any key to continue\n")
		assert.NotContains(t, out, "Enter an amount")
		assert.Equal(t, before, h.count(t, &rdb.StoreInventoryModel{}))
	})

	assert.Equal(t, []string{inventory.EventInventoryAdded, inventory.EventInventoryRemoved}, h.events.RoutingKeys())
}

func TestMenu_AddBookToStore(t *testing.T) {
	t.Run("已有库存行时累加且不提示", func(t *testing.T) {
		h := newHarness(t)
		rows := h.count(t, &rdb.StoreInventoryModel{})

		out, err := h.run(t, script("4", "1", "1", "3", "12"))
		require.NoError(t, err)
		assert.NotContains(t, out, "Book added to store.")
		assert.Equal(t, 8, h.amount(t, 1, potter))
		assert.Equal(t, rows, h.count(t, &rdb.StoreInventoryModel{}))
	})

	t.Run("出库少于库存时扣减", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.run(t, script("5", "1", "1", "2", "", "12"))
		require.NoError(t, err)
		assert.Equal(t, 3, h.amount(t, 1, potter))
	})
}

func TestMenu_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		action string
		input  []string
	}{
		{"门店序号越界", "add_book_to_store", []string{"4", "9"}},
		{"门店序号不是数字", "add_book_to_store", []string{"4", "x"}},
		{"图书序号为0", "add_book_to_store", []string{"4", "1", "0"}},
		{"数量为0", "add_book_to_store", []string{"4", "1", "1", "0"}},
		{"数量为负数", "remove_book_from_store", []string{"5", "1", "1", "-2"}},
		{"出库图书越界", "remove_book_from_store", []string{"5", "2", "2"}},
		{"ISBN长度不足", "add_book", []string{"6", "1", "1", "1", "Title", "123"}},
		{"ISBN超过13位", "add_book", []string{"6", "1", "1", "1", "Title", "97800000000021"}},
		{"ISBN重复", "add_book", []string{"6", "1", "1", "1", "Title", potter}},
		{"价格非法", "add_book", []string{"6", "1", "1", "1", "Title", "9780000000002", "abc"}},
		{"价格为0", "add_book", []string{"6", "1", "1", "1", "Title", "9780000000002", "0"}},
		{"出版日期非法", "add_book", []string{"6", "1", "1", "1", "Title", "9780000000002", "9.99", "2020-02-30"}},
		{"修改图书语言越界", "edit_book", []string{"8", "1", "1", "1", "3"}},
		{"出生日期非法", "add_author", []string{"7", "A", "B", "1990/01/01"}},
		{"修改作者越界", "edit_author", []string{"9", "3"}},
		{"删除图书越界", "remove_book", []string{"10", "3"}},
		{"删除作者越界", "remove_author", []string{"11", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			metrics.InitMetrics()
			counter := metrics.MenuActionsTotal
			before := testutil.ToFloat64(counter.WithLabelValues(tt.action, metrics.ResultInvalid))

			lines := append(append([]string{}, tt.input...), "", "12")
			out, err := h.run(t, script(lines...))
			require.NoError(t, err)
			assert.Contains(t, out, "Invalid Option\nPress any key to continue\n")

			// 没有任何写入
			assert.Equal(t, 5, h.amount(t, 1, potter))
			assert.Equal(t, 2, h.amount(t, 1, pippi))
			assert.Equal(t, int64(3), h.count(t, &rdb.StoreInventoryModel{}))
			assert.Equal(t, int64(2), h.count(t, &rdb.BookModel{}))
			assert.Equal(t, int64(2), h.count(t, &rdb.AuthorModel{}))
			assert.Empty(t, h.events.RoutingKeys())

			after := testutil.ToFloat64(counter.WithLabelValues(tt.action, metrics.ResultInvalid))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestMenu_Books(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	books := rdb.NewBookRepository(h.db)

	t.Run("新增图书", func(t *testing.T) {
		out, err := h.run(t, script("6", "2", "2", "2", "Emil i Lönneberga", "9789129688320", "99.5", "1963-01-01", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "1. Joanne Rowling\n2. Astrid Lindgren\n")
		assert.Contains(t, out, "\nBook added.\n")

		b, err := books.FindByISBN(ctx, "9789129688320")
		require.NoError(t, err)
		assert.Equal(t, "Emil i Lönneberga", b.Title)
		assert.Equal(t, "99.50", b.Price.StringFixed(2))
		assert.Equal(t, uint(2), b.AuthorID)
		assert.Equal(t, "1963-01-01", b.DatePublished.Format("2006-01-02"))
	})

	t.Run("修改图书", func(t *testing.T) {
		// 图书按ISBN排序: potter, pippi, emil
		out, err := h.run(t, script("8", "1", "2", "2", "2", "Renamed", "10", "2000-01-01", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "\nBook edited\n")

		b, err := books.FindByISBN(ctx, potter)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", b.Title)
		assert.Equal(t, uint(2), b.AuthorID)
		assert.Equal(t, uint(2), b.LanguageID)
		assert.True(t, b.Price.Equal(decimal.NewFromInt(10)))
	})

	t.Run("删除图书", func(t *testing.T) {
		out, err := h.run(t, script("10", "3", "", "12"))
		require.NoError(t, err)
		assert.Contains(t, out, "\nBook removed\n")

		_, err = books.FindByISBN(ctx, "9789129688320")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	assert.Equal(t, []string{appbook.EventBookAdded, appbook.EventBookEdited, appbook.EventBookRemoved}, h.events.RoutingKeys())
}

func TestMenu_Authors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	authors := rdb.NewAuthorRepository(h.db)

	out, err := h.run(t, script(
		"7", "Stephen", "King", "1947-09-21", "",
		"9", "3", "Richard", "Bachman", "1947-09-22", "",
		"12",
	))
	require.NoError(t, err)
	assert.Contains(t, out, "\nAuthor added\n")
	assert.Contains(t, out, "3. Stephen King\n")
	assert.Contains(t, out, "\nAuthor edited\n")

	a, err := authors.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Richard Bachman", a.FullName())
	assert.Equal(t, "1947-09-22", a.Birthdate.Format("2006-01-02"))

	out, err = h.run(t, script("11", "3", "", "12"))
	require.NoError(t, err)
	assert.Contains(t, out, "\nAuthor removed\n")
	_, err = authors.FindByID(ctx, 3)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestMenu_StoreErrorIsFatal(t *testing.T) {
	h := newHarness(t)

	// potter仍有库存和订单,外键约束拒绝删除
	out, err := h.run(t, script("10", "1", "", "12"))
	require.Error(t, err)
	assert.False(t, apperrors.IsClientError(err))
	assert.NotContains(t, out, "Book removed")
	assert.NotContains(t, out, "Invalid Option")

	t.Run("错误日志带trace_id", func(t *testing.T) {
		sr := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
		prev := otel.GetTracerProvider()
		otel.SetTracerProvider(tp)
		t.Cleanup(func() {
			otel.SetTracerProvider(prev)
			_ = tp.Shutdown(context.Background())
		})

		var logs bytes.Buffer
		h := newHarness(t)
		h.log = logger.NewWithWriter(&logs, "error", "json")

		_, err := h.run(t, script("10", "1", "", "12"))
		require.Error(t, err)

		var root sdktrace.ReadOnlySpan
		for _, s := range sr.Ended() {
			if s.Name() == "remove_book" {
				root = s
			}
		}
		require.NotNil(t, root)
		assert.Equal(t, codes.Error, root.Status().Code)
		assert.Contains(t, logs.String(), `"trace_id":"`+root.SpanContext().TraceID().String()+`"`)
	})
}
