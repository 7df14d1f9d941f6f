// Package metrics 提供基于Prometheus的指标收集
//
// # 指标一览
//
// **数据访问**（每次仓储调用记录一次）：
//   - bookstore_db_operations_total{entity, op, result}
//   - bookstore_db_operation_duration_seconds{entity, op}
//
// **菜单操作**（控制台每执行一个菜单项记录一次）：
//   - bookstore_menu_actions_total{action, result}，result为ok/invalid/error
//
// **变更事件**：
//   - bookstore_events_published_total{routing_key, result}
//
// # 使用示例
//
//	metrics.InitMetrics()
//
//	start := time.Now()
//	err := db.Find(&models).Error
//	metrics.ObserveDBOperation("book", "list", start, err)
//
// 指标默认注册到全局Registry，由ops服务器的/metrics端点暴露。
// 交互模式下通常不开启ops服务器，此时指标只在进程内累计。
//
// # 命名规范
//
// 1. Counter以`_total`结尾
// 2. Histogram以单位结尾（`_seconds`）
// 3. 标签只用有限取值（entity、op、action），不要把ISBN之类的值放进标签
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// 结果标签取值
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	initOnce sync.Once

	// 数据访问指标

	// DBOperationsTotal 仓储调用总数（Counter）
	// 标签：entity（book/author/...）、op（list/create/update/delete/find）、result（ok/not_found/invalid/error）
	// 记录不存在、唯一约束冲突属于预期结果，不计入error
	DBOperationsTotal *prometheus.CounterVec

	// DBOperationDuration 仓储调用耗时（Histogram）
	// 桶设置：0.5ms到1s，单条SQL一般落在前几个桶
	DBOperationDuration *prometheus.HistogramVec

	// 控制台指标

	// MenuActionsTotal 菜单操作总数（Counter）
	// 标签：action（list_inventory/add_book/...）、result（ok/invalid/error）
	MenuActionsTotal *prometheus.CounterVec

	// 消息队列指标

	// EventsPublishedTotal 事件发布总数（Counter）
	// 标签：routing_key、result（ok/error）
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 可以重复调用，只有第一次会注册
func InitMetrics() {
	initOnce.Do(func() {
		DBOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_db_operations_total",
				Help: "Total number of data access operations",
			},
			[]string{"entity", "op", "result"},
		)

		DBOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookstore_db_operation_duration_seconds",
				Help:    "Data access operation latency in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"entity", "op"},
		)

		MenuActionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_menu_actions_total",
				Help: "Total number of menu actions executed from the console",
			},
			[]string{"action", "result"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_events_published_total",
				Help: "Total number of change events published",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// ObserveDBOperation 记录一次仓储调用（次数+耗时）
func ObserveDBOperation(entity, op string, start time.Time, err error) {
	InitMetrics()

	IncCounterVec(DBOperationsTotal, map[string]string{"entity": entity, "op": op, "result": dbResult(err)})
	ObserveHistogramVec(DBOperationDuration, map[string]string{"entity": entity, "op": op}, time.Since(start).Seconds())
}

func dbResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case !apperrors.IsClientError(err):
		return ResultError
	}
	if code := apperrors.GetAppError(err).Code; code >= 40400 && code < 40500 {
		return ResultNotFound
	}
	return ResultInvalid
}

// RecordMenuAction 记录一次菜单操作
func RecordMenuAction(action, result string) {
	InitMetrics()
	IncCounterVec(MenuActionsTotal, map[string]string{"action": action, "result": result})
}

// RecordEventPublished 记录一次事件发布
func RecordEventPublished(routingKey string, err error) {
	InitMetrics()

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	IncCounterVec(EventsPublishedTotal, map[string]string{"routing_key": routingKey, "result": result})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
