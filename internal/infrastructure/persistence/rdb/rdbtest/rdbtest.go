// Package rdbtest 为测试提供迁移好的临时sqlite数据库
package rdbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
)

// Config 指向t.TempDir()下sqlite文件的配置
// 迁移和应用各用一个连接,所以不能用:memory:
func Config(t testing.TB) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{Name: "bookstore-admin-test", Env: "test"},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			Path:            filepath.Join(t.TempDir(), "bookstore.db"),
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
			AutoMigrate:     true,
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
	}
}

// NewDB 打开并迁移临时数据库,测试结束时自动关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, cleanup, err := rdb.NewDB(Config(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return db
}
