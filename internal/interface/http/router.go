// Package http 运维HTTP服务(健康检查和Prometheus指标)
package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

// NewRouter 创建运维路由
//
//	GET /ping     健康检查(含数据库探活)
//	GET /metrics  Prometheus指标
func NewRouter(cfg *config.Config, log zerolog.Logger, health *handler.HealthHandler) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/ping", health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Server 运维HTTP服务
type Server struct {
	srv *nethttp.Server
	log zerolog.Logger
}

// NewServer 创建运维服务,监听metrics.listen_addr
func NewServer(cfg *config.Config, log zerolog.Logger, router *gin.Engine) *Server {
	return &Server{
		srv: &nethttp.Server{
			Addr:              cfg.Metrics.ListenAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start 后台启动,监听失败只记录日志,不影响菜单
func (s *Server) Start() {
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("ops server listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			s.log.Error().Err(err).Msg("ops server stopped")
		}
	}()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
