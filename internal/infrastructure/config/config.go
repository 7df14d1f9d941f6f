package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支持的数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、.env文件和环境变量覆盖
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	MQ       MQConfig       `mapstructure:"mq"`
	UI       UIConfig       `mapstructure:"ui"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"` // dev | prod | test
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // mysql | postgres | sqlite
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Path            string        `mapstructure:"path"` // sqlite文件路径
	SSLMode         string        `mapstructure:"sslmode"`
	Loc             string        `mapstructure:"loc"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogSQL          bool          `mapstructure:"log_sql"`
}

// DSN 按驱动生成连接字符串
//   - mysql: 交给go-sql-driver生成，开启parseTime和multiStatements（迁移脚本需要），
//     clientFoundRows让UPDATE的影响行数按匹配行计算
//   - postgres: key=value格式，值加单引号，供pgx解析
//   - sqlite: 文件路径，开启外键约束
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pgQuote(d.Host), d.Port, pgQuote(d.User), pgQuote(d.Password), pgQuote(d.DBName), pgQuote(d.SSLMode))
	case DriverSQLite:
		return d.Path + "?_foreign_keys=on"
	default:
		loc, err := time.LoadLocation(d.Loc)
		if err != nil {
			loc = time.Local
		}
		mc := gomysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
		mc.DBName = d.DBName
		mc.ParseTime = true
		mc.Loc = loc
		mc.MultiStatements = true
		mc.ClientFoundRows = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// pgQuote 按libpq规则给值加单引号，转义反斜杠和单引号
func pgQuote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// MigrateURL golang-migrate使用的数据库URL
// 迁移使用独立连接，scheme对应注册的迁移驱动(mysql/pgx5)
// sqlite不走URL，直接用DSN打开连接，返回空串
func (d DatabaseConfig) MigrateURL() string {
	switch d.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "pgx5",
			User:     url.UserPassword(d.User, d.Password),
			Host:     d.Host + ":" + strconv.Itoa(d.Port),
			Path:     "/" + d.DBName,
			RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
		}
		return u.String()
	case DriverSQLite:
		return ""
	default:
		return "mysql://" + d.DSN()
	}
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"` // OTLP gRPC端点，如localhost:4317
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

type MQConfig struct {
	URL          string `mapstructure:"url"` // 为空则不发布事件
	Exchange     string `mapstructure:"exchange"`
	ExchangeType string `mapstructure:"exchange_type"`
	Queue        string `mapstructure:"queue"`
}

// Enabled 是否配置了消息队列
func (m MQConfig) Enabled() bool {
	return m.URL != ""
}

type UIConfig struct {
	Pause       bool `mapstructure:"pause"`        // 每个操作后等待回车
	ClearScreen bool `mapstructure:"clear_screen"` // 每次显示菜单前清屏
}

// Load 加载配置
// 支持：
// 1. 默认查找./config/config.yaml或./config.yaml，也可以传入显式路径
// 2. 当前目录存在.env时先加载到环境变量
// 3. 环境变量覆盖（如BOOKSTORE_DATABASE_PASSWORD → database.password）
// 4. 没有配置文件时完全使用默认值（sqlite本地文件）
func Load(path string) (*Config, error) {
	// 1. 加载.env（不存在时忽略）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("加载.env失败: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// 2. 配置文件
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 3. 环境变量绑定
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 解析到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 5. 未配置端口时按驱动取默认端口
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultPort(cfg.Database.Driver)
	}

	// 6. 配置验证
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults 默认值
// AutomaticEnv只对viper已知的key生效，所以每个key都要有默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bookstore-admin")
	v.SetDefault("app.env", "dev")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 0) // 0表示按驱动取默认端口
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "bookstore")
	v.SetDefault("database.path", "bookstore.db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_sql", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_addr", ":9090")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("mq.url", "")
	v.SetDefault("mq.exchange", "bookstore.admin.events")
	v.SetDefault("mq.exchange_type", "topic")
	v.SetDefault("mq.queue", "bookstore.admin.tail")

	v.SetDefault("ui.pause", true)
	v.SetDefault("ui.clear_screen", true)
}

// defaultPort 驱动的默认端口
func defaultPort(driver string) int {
	switch driver {
	case DriverPostgres:
		return 5432
	case DriverMySQL:
		return 3306
	default:
		return 0
	}
}

// validate 配置校验
func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
			return fmt.Errorf("无效的数据库端口: %d", cfg.Database.Port)
		}
		if cfg.Database.DBName == "" {
			return fmt.Errorf("database.dbname不能为空")
		}
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return fmt.Errorf("database.path不能为空")
		}
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", cfg.Database.Driver)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("无效的日志格式: %q", cfg.Log.Format)
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio必须在0到1之间: %v", cfg.Tracing.SampleRatio)
	}

	if cfg.MQ.Enabled() && cfg.MQ.Exchange == "" {
		return fmt.Errorf("配置了mq.url时mq.exchange不能为空")
	}

	return nil
}
