package rdb

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 按database.driver选择GORM方言(mysql/postgres/sqlite)
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. database.auto_migrate开启时先执行版本化迁移
// 4. 返回的cleanup负责关闭连接,数据库的生命周期跟随配置
func NewDB(cfg *config.Config, log zerolog.Logger) (*gorm.DB, func(), error) {
	// 1. 迁移表结构
	if cfg.Database.AutoMigrate {
		if err := MigrateUp(cfg.Database, log); err != nil {
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	// 2. 连接数据库
	db, err := gorm.Open(dialector(cfg.Database), &gorm.Config{
		Logger:         newGormLogger(log, cfg.Database.LogSQL),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 3. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 4. 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("数据库连接成功")

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("关闭数据库连接失败")
			return
		}
		log.Debug().Msg("数据库连接已关闭")
	}
	return db, cleanup, nil
}

func dialector(d config.DatabaseConfig) gorm.Dialector {
	switch d.Driver {
	case config.DriverPostgres:
		return postgres.Open(d.DSN())
	case config.DriverSQLite:
		return sqlite.Open(d.DSN())
	default:
		return mysql.Open(d.DSN())
	}
}
