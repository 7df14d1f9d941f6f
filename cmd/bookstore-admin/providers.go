package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/interface/console"
	opshttp "github.com/xiebiao/bookstore-admin/internal/interface/http"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
)

// App 组装完成的应用
type App struct {
	Menu   *console.Menu
	Orders *console.OrderHandler
	Seed   *seed.SeedUseCase
	Ops    *opshttp.Server
}

// providePublisher 配置了mq.url时连接RabbitMQ,否则不发布事件
// 连续失败3次后熔断30秒
func providePublisher(cfg *config.Config, log zerolog.Logger) (mq.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled() {
		return mq.NopPublisher{}, func() {}, nil
	}

	conn, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log)
	if err != nil {
		return nil, nil, err
	}
	p := mq.NewGuardedPublisher(conn, 3, 30*time.Second, log)
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn().Err(err).Msg("close event publisher failed")
		}
	}, nil
}

// provideSQLDB 健康检查直接探测底层连接池
func provideSQLDB(db *gorm.DB) (handler.Pinger, error) {
	return db.DB()
}

func provideConsole(in io.Reader, out io.Writer, cfg *config.Config) *console.Console {
	return console.New(in, out, cfg.UI)
}
