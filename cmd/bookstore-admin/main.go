package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookstore-admin/internal/application/seed"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-admin/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/mq"
	"github.com/xiebiao/bookstore-admin/pkg/tracing"
)

// main 程序入口
// 不带子命令时进入交互菜单;存储层错误会让进程以非0退出
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli 命令之间共享的配置和日志
type cli struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "bookstore-admin",
		Short:         "Bookstore database admin tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("app", cfg.App.Name).Logger()
			return nil
		},
		RunE: c.runMenu,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./config/config.yaml)")

	root.AddCommand(
		c.migrateCommand(),
		c.seedCommand(),
		c.ordersCommand(),
		c.eventsCommand(),
	)
	return root
}

// runMenu 交互菜单
func (c *cli) runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 链路追踪(可选)
	if c.cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(c.cfg.App.Name, c.cfg.Tracing.Endpoint, c.cfg.Tracing.SampleRatio)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				c.log.Warn().Err(err).Msg("shutdown tracer failed")
			}
		}()
	}

	// 2. 组装依赖,cleanup关闭数据库连接
	app, cleanup, err := InitializeApp(c.cfg, c.log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	// 3. 运维服务(可选)
	if c.cfg.Metrics.Enabled {
		app.Ops.Start()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.Ops.Shutdown(sctx); err != nil {
				c.log.Warn().Err(err).Msg("shutdown ops server failed")
			}
		}()
	}

	// 4. 菜单循环
	if err := app.Menu.Run(ctx); err != nil {
		c.log.Error().Err(err).Msg("store operation failed, exiting")
		return err
	}
	return nil
}

func (c *cli) migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	run := func(apply func(m *rdb.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			m, err := rdb.NewMigrator(c.cfg.Database, c.log)
			if err != nil {
				return err
			}
			defer m.Close()

			if err := apply(m); err != nil {
				return err
			}
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", v, dirty)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Migrate all the way up",
			Args:  cobra.NoArgs,
			RunE:  run((*rdb.Migrator).Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE:  run((*rdb.Migrator).Down),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE:  run(func(*rdb.Migrator) error { return nil }),
		},
	)
	return cmd
}

func (c *cli) seedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo stores, books, authors and an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return err
				}
			}
			fixture, err := seed.ParseFixture(data)
			if err != nil {
				return err
			}

			app, cleanup, err := InitializeApp(c.cfg, c.log, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := app.Seed.Execute(cmd.Context(), fixture)
			if errors.Is(err, seed.ErrNotEmpty) {
				c.log.Warn().Msg("database already has stores, nothing seeded")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d stores, %d books, %d authors, %d inventory rows, %d orders\n",
				resp.Stores, resp.Books, resp.Authors, resp.Inventory, resp.Orders)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture (default: built-in demo data)")
	return cmd
}

func (c *cli) ordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List customer orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := InitializeApp(c.cfg, c.log, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Orders.ListOrders(cmd.Context())
		},
	}
}

// eventsCommand 订阅变更事件并逐行输出,Ctrl+C退出
func (c *cli) eventsCommand() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail change events from RabbitMQ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.cfg.MQ.Enabled() {
				return errors.New("mq.url is not configured")
			}

			consumer, err := mq.NewConsumer(c.cfg.MQ.URL, c.cfg.MQ.Exchange, c.cfg.MQ.ExchangeType, c.cfg.MQ.Queue, keys, c.log)
			if err != nil {
				return err
			}
			defer consumer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = consumer.Consume(ctx, func(routingKey string, body []byte) error {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", routingKey, body)
				return nil
			})
			return err
		},
	}
	cmd.Flags().StringSliceVar(&keys, "key", []string{"#"}, "routing keys to subscribe to")
	return cmd
}
