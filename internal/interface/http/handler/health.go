package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

// Pinger 可探活的依赖(*sql.DB满足该接口)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Ping 健康检查
// 数据库不可用时返回503和50001
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		response.Error(c, apperrors.Wrap(err, "database unavailable"))
		return
	}

	response.Success(c, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}
