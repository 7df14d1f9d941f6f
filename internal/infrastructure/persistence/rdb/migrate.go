package rdb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator 版本化的表结构迁移
// 设计说明:
// 1. 迁移脚本按方言分目录,随二进制一起嵌入
// 2. 迁移使用自己的连接,Close不会影响应用的连接池
// 3. mysql/postgres通过MigrateURL连接;sqlite用DSN打开*sql.DB交给迁移驱动,文件路径不经过URL编码
type Migrator struct {
	m   *migrate.Migrate
	log zerolog.Logger
}

// NewMigrator 创建迁移器
func NewMigrator(cfg config.DatabaseConfig, log zerolog.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("加载迁移脚本失败: %w", err)
	}

	var m *migrate.Migrate
	if cfg.Driver == config.DriverSQLite {
		m, err = newSQLiteMigrate(src, cfg)
	} else {
		m, err = migrate.NewWithSourceInstance("iofs", src, cfg.MigrateURL())
	}
	if err != nil {
		return nil, fmt.Errorf("初始化迁移失败: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

func newSQLiteMigrate(src source.Driver, cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	db, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, err
	}
	// 驱动接管db,Close时一并关闭
	drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		db.Close()
		return nil, err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		drv.Close()
		return nil, err
	}
	return m, nil
}

// Up 迁移到最新版本,已是最新时不报错
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.log.Debug().Msg("表结构已是最新版本")
			return nil
		}
		return fmt.Errorf("执行迁移失败: %w", err)
	}
	m.logVersion("迁移完成")
	return nil
}

// Down 回滚全部迁移
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("回滚迁移失败: %w", err)
	}
	m.log.Info().Msg("迁移已全部回滚")
	return nil
}

// Version 当前版本,尚未迁移时返回0
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close 关闭迁移连接
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (m *Migrator) logVersion(msg string) {
	v, dirty, err := m.Version()
	if err != nil {
		m.log.Warn().Err(err).Msg("读取迁移版本失败")
		return
	}
	m.log.Info().Uint("version", v).Bool("dirty", dirty).Msg(msg)
}

// MigrateUp 打开迁移器执行Up后关闭
func MigrateUp(cfg config.DatabaseConfig, log zerolog.Logger) error {
	m, err := NewMigrator(cfg, log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
