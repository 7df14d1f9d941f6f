// Package seed 写入演示数据
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/xiebiao/bookstore-admin/internal/domain/author"
	"github.com/xiebiao/bookstore-admin/internal/domain/book"
	"github.com/xiebiao/bookstore-admin/internal/domain/language"
	"github.com/xiebiao/bookstore-admin/internal/domain/order"
	"github.com/xiebiao/bookstore-admin/internal/domain/publisher"
	"github.com/xiebiao/bookstore-admin/internal/domain/store"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

//go:embed fixture.yaml
var defaultFixture []byte

const dateLayout = "2006-01-02"

// ErrNotEmpty 数据库里已有门店,不重复写入
var ErrNotEmpty = apperrors.New(apperrors.ErrCodeBusinessError, "database already contains stores, seed skipped")

// Fixture 演示数据,记录之间用key互相引用
type Fixture struct {
	Languages []struct {
		Key  string `yaml:"key"`
		Name string `yaml:"name"`
	} `yaml:"languages"`
	Publishers []struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
	} `yaml:"publishers"`
	Authors []struct {
		Key       string `yaml:"key"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Birthdate string `yaml:"birthdate"`
	} `yaml:"authors"`
	Books []struct {
		ISBN13        string `yaml:"isbn13"`
		Title         string `yaml:"title"`
		Price         string `yaml:"price"`
		DatePublished string `yaml:"date_published"`
		Author        string `yaml:"author"`
		Publisher     string `yaml:"publisher"`
		Language      string `yaml:"language"`
	} `yaml:"books"`
	Stores []struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
	} `yaml:"stores"`
	Inventory []struct {
		Store  string `yaml:"store"`
		ISBN13 string `yaml:"isbn13"`
		Amount int    `yaml:"amount"`
	} `yaml:"inventory"`
	Customers []struct {
		Key       string `yaml:"key"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Address   string `yaml:"address"`
	} `yaml:"customers"`
	Orders []struct {
		Customer        string `yaml:"customer"`
		Store           string `yaml:"store"`
		DeliveryAddress string `yaml:"delivery_address"`
		Items           []struct {
			ISBN13 string `yaml:"isbn13"`
			Amount int    `yaml:"amount"`
		} `yaml:"items"`
	} `yaml:"orders"`
}

// ParseFixture 解析YAML演示数据,data为空时使用内置数据
func ParseFixture(data []byte) (*Fixture, error) {
	if len(data) == 0 {
		data = defaultFixture
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析演示数据失败: %w", err)
	}
	return &f, nil
}

// Repositories seed用到的全部仓储
type Repositories struct {
	Languages  language.Repository
	Publishers publisher.Repository
	Authors    author.Repository
	Books      book.Service
	Stores     store.Repository
	Inventory  store.Service
	Customers  order.CustomerRepository
	Orders     order.Repository
	OrderItems order.ItemRepository
}

// Transactor 事务执行器
// fn内通过ctx调用的仓储方法在同一事务中执行,fn返回error时整体回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SeedUseCase 演示数据写入用例
// 全部写入在一个事务中,任何一步失败整体回滚
type SeedUseCase struct {
	repos     Repositories
	txManager Transactor
	log       zerolog.Logger
}

// NewSeedUseCase 创建seed用例
func NewSeedUseCase(repos Repositories, txManager Transactor, log zerolog.Logger) *SeedUseCase {
	return &SeedUseCase{repos: repos, txManager: txManager, log: log}
}

// SeedResponse 写入数量统计
type SeedResponse struct {
	Languages  int `json:"languages"`
	Publishers int `json:"publishers"`
	Authors    int `json:"authors"`
	Books      int `json:"books"`
	Stores     int `json:"stores"`
	Inventory  int `json:"inventory"`
	Customers  int `json:"customers"`
	Orders     int `json:"orders"`
}

// Execute 写入演示数据,已有门店时返回ErrNotEmpty
func (uc *SeedUseCase) Execute(ctx context.Context, f *Fixture) (resp *SeedResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "bookstore-admin/application/seed", "Seed")
	defer func() { tracing.EndSpan(span, err) }()

	existing, err := uc.repos.Stores.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrNotEmpty
	}

	resp = &SeedResponse{}
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		return uc.load(ctx, f, resp)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("books", resp.Books).
		Int("stores", resp.Stores).
		Int("orders", resp.Orders).
		Msg("演示数据写入完成")
	return resp, nil
}

func (uc *SeedUseCase) load(ctx context.Context, f *Fixture, resp *SeedResponse) error {
	// 1. 参考数据
	languageIDs := map[string]uint{}
	for _, l := range f.Languages {
		m := &language.Language{Name: l.Name}
		if err := uc.repos.Languages.Create(ctx, m); err != nil {
			return err
		}
		languageIDs[l.Key] = m.ID
		resp.Languages++
	}

	publisherIDs := map[string]uint{}
	for _, p := range f.Publishers {
		m := &publisher.Publisher{Name: p.Name, Address: p.Address}
		if err := uc.repos.Publishers.Create(ctx, m); err != nil {
			return err
		}
		publisherIDs[p.Key] = m.ID
		resp.Publishers++
	}

	authorIDs := map[string]uint{}
	for _, a := range f.Authors {
		born, err := time.Parse(dateLayout, a.Birthdate)
		if err != nil {
			return fmt.Errorf("作者%s的出生日期格式错误: %w", a.Key, err)
		}
		m := author.NewAuthor(a.FirstName, a.LastName, born)
		if err := uc.repos.Authors.Create(ctx, m); err != nil {
			return err
		}
		authorIDs[a.Key] = m.ID
		resp.Authors++
	}

	// 2. 图书(走领域服务校验ISBN和价格)
	for _, b := range f.Books {
		price, err := decimal.NewFromString(b.Price)
		if err != nil {
			return fmt.Errorf("图书%s的价格格式错误: %w", b.ISBN13, err)
		}
		published, err := time.Parse(dateLayout, b.DatePublished)
		if err != nil {
			return fmt.Errorf("图书%s的出版日期格式错误: %w", b.ISBN13, err)
		}
		d := book.Details{
			Title:         b.Title,
			Price:         price,
			DatePublished: published,
			AuthorID:      authorIDs[b.Author],
			PublisherID:   publisherIDs[b.Publisher],
			LanguageID:    languageIDs[b.Language],
		}
		if _, err := uc.repos.Books.AddBook(ctx, b.ISBN13, d); err != nil {
			return err
		}
		resp.Books++
	}

	// 3. 门店和库存
	storeIDs := map[string]uint{}
	for _, s := range f.Stores {
		m := &store.Store{Name: s.Name, Address: s.Address}
		if err := uc.repos.Stores.Create(ctx, m); err != nil {
			return err
		}
		storeIDs[s.Key] = m.ID
		resp.Stores++
	}
	for _, inv := range f.Inventory {
		if _, _, err := uc.repos.Inventory.StockBook(ctx, storeIDs[inv.Store], inv.ISBN13, inv.Amount); err != nil {
			return err
		}
		resp.Inventory++
	}

	// 4. 顾客和订单
	customers := map[string]*order.Customer{}
	for _, c := range f.Customers {
		m := &order.Customer{FirstName: c.FirstName, LastName: c.LastName, Address: c.Address}
		if err := uc.repos.Customers.Create(ctx, m); err != nil {
			return err
		}
		customers[c.Key] = m
		resp.Customers++
	}
	for _, o := range f.Orders {
		c, ok := customers[o.Customer]
		if !ok {
			return fmt.Errorf("订单引用了不存在的顾客: %s", o.Customer)
		}
		m := order.NewOrder(c, storeIDs[o.Store], o.DeliveryAddress)
		if err := uc.repos.Orders.Create(ctx, m); err != nil {
			return err
		}
		for _, it := range o.Items {
			item, err := order.NewOrderItem(m.ID, it.ISBN13, it.Amount)
			if err != nil {
				return err
			}
			if err := uc.repos.OrderItems.Create(ctx, item); err != nil {
				return err
			}
		}
		resp.Orders++
	}
	return nil
}
