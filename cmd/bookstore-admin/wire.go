//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 修改本文件后运行 `wire gen ./cmd/bookstore-admin` 重新生成wire_gen.go
//
// 依赖链:
// Menu → Handler → UseCase → Service → Repository → *gorm.DB → *config.Config

package main

import (
	"io"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	appauthor "github.com/xiebiao/bookstore-admin/internal/application/author"
	appbook "github.com/xiebiao/bookstore-admin/internal/application/book"
	"github.com/xiebiao/bookstore-admin/internal/application/inventory"
	apporder "github.com/xiebiao/bookstore-admin/internal/application/order"
	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookstore-admin/internal/interface/console"
	opshttp "github.com/xiebiao/bookstore-admin/internal/interface/http"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖
// 包含:数据库连接(带cleanup)、事务管理器、事件发布者
var infrastructureSet = wire.NewSet(
	rdb.NewDB,
	rdb.NewTxManager,
	wire.Bind(new(seed.Transactor), new(*rdb.TxManager)),
	providePublisher,
	provideSQLDB,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	rdb.NewBookRepository,
	rdb.NewAuthorRepository,
	rdb.NewPublisherRepository,
	rdb.NewLanguageRepository,
	rdb.NewStoreRepository,
	rdb.NewInventoryRepository,
	rdb.NewCustomerRepository,
	rdb.NewOrderRepository,
	rdb.NewOrderItemRepository,
	rdb.NewSeedRepositories,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	author.NewService,
	store.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	inventory.NewListInventoryUseCase,
	inventory.NewListStoresUseCase,
	inventory.NewBooksInStoreUseCase,
	inventory.NewAddBookToStoreUseCase,
	inventory.NewRemoveBookFromStoreUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewFormOptionsUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewEditBookUseCase,
	appbook.NewRemoveBookUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewAddAuthorUseCase,
	appauthor.NewEditAuthorUseCase,
	appauthor.NewRemoveAuthorUseCase,
	apporder.NewListOrdersUseCase,
	seed.NewSeedUseCase,
)

// interfaceSet 接口层依赖:控制台菜单和运维HTTP服务
var interfaceSet = wire.NewSet(
	provideConsole,
	console.NewInventoryHandler,
	console.NewBookHandler,
	console.NewAuthorHandler,
	console.NewOrderHandler,
	console.NewMenu,
	handler.NewHealthHandler,
	opshttp.NewRouter,
	opshttp.NewServer,
)

// InitializeApp 组装整个应用
// 返回的cleanup按创建的相反顺序关闭事件发布者和数据库连接
func InitializeApp(cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
