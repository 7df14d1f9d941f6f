package console

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

const tracerName = "bookstore-admin/interface/console"

// ExitOption 退出菜单的选项
const ExitOption = "12"

type action struct {
	label  string
	metric string
	run    func(ctx context.Context) error
}

// Menu 主菜单循环
type Menu struct {
	console *Console
	log     zerolog.Logger
	actions []action
}

// NewMenu 创建主菜单,选项顺序固定(1-11为操作,12为退出)
func NewMenu(console *Console, inv *InventoryHandler, books *BookHandler, authors *AuthorHandler, log zerolog.Logger) *Menu {
	return &Menu{
		console: console,
		log:     log,
		actions: []action{
			{"List inventory", "list_inventory", inv.ListInventory},
			{"List all books", "list_books", books.ListBooks},
			{"List all authors", "list_authors", authors.ListAuthors},
			{"Add Book To Store", "add_book_to_store", inv.AddBookToStore},
			{"Remove Book From Store", "remove_book_from_store", inv.RemoveBookFromStore},
			{"Add Book", "add_book", books.AddBook},
			{"Add Author", "add_author", authors.AddAuthor},
			{"Edit Book", "edit_book", books.EditBook},
			{"Edit Author", "edit_author", authors.EditAuthor},
			{"Remove Book", "remove_book", books.RemoveBook},
			{"Remove Author", "remove_author", authors.RemoveAuthor},
		},
	}
}

// Run 运行菜单直到选择退出或输入结束
// 操作员输入错误提示"Invalid Option"后回到菜单,其余错误原样返回
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render()
		line, err := m.console.Prompt(PromptSelectOption)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		choice := strings.TrimSpace(line)
		if choice == ExitOption {
			return nil
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(m.actions) {
			m.console.Println()
			continue
		}

		if err := m.dispatch(ctx, m.actions[n-1]); err != nil {
			return err
		}
	}
}

func (m *Menu) render() {
	m.console.Clear()
	m.console.Println(MsgWelcome)
	for i, a := range m.actions {
		m.console.Printf("%d. %s\n", i+1, a.label)
	}
	m.console.Printf("%s. Exit\n", ExitOption)
}

// dispatch 执行一个菜单操作
// 每个操作一个span,用例层的span挂在它下面
func (m *Menu) dispatch(ctx context.Context, a action) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, a.metric)
	defer func() { tracing.EndSpan(span, err) }()

	err = a.run(ctx)
	switch {
	case err == nil:
		metrics.RecordMenuAction(a.metric, metrics.ResultOK)
		return nil
	case errors.Is(err, io.EOF):
		// 操作中途输入结束,视为放弃
		metrics.RecordMenuAction(a.metric, metrics.ResultInvalid)
		return nil
	case apperrors.IsClientError(err):
		metrics.RecordMenuAction(a.metric, metrics.ResultInvalid)
		m.log.Debug().Err(err).Str("action", a.metric).Msg("invalid input")
		m.console.Println(MsgInvalidOption)
		return m.console.Wait()
	default:
		metrics.RecordMenuAction(a.metric, metrics.ResultError)
		m.log.Error().Err(err).
			Str("action", a.metric).
			Str("trace_id", tracing.ExtractTraceID(ctx)).
			Msg("menu action failed")
		return err
	}
}
