package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	// 重复调用不会重复注册（否则promauto会panic）
	assert.NotPanics(t, InitMetrics)

	assert.NotNil(t, DBOperationsTotal)
	assert.NotNil(t, DBOperationDuration)
	assert.NotNil(t, MenuActionsTotal)
	assert.NotNil(t, EventsPublishedTotal)
}

// TestObserveDBOperation 测试仓储调用指标
func TestObserveDBOperation(t *testing.T) {
	InitMetrics()

	okLabels := map[string]string{"entity": "publisher", "op": "list", "result": ResultOK}
	errLabels := map[string]string{"entity": "publisher", "op": "list", "result": ResultError}
	before := getCounterVecValue(t, DBOperationsTotal, okLabels)
	beforeErr := getCounterVecValue(t, DBOperationsTotal, errLabels)
	beforeCount := getHistogramVecCount(t, DBOperationDuration, map[string]string{"entity": "publisher", "op": "list"})

	start := time.Now().Add(-2 * time.Millisecond)
	ObserveDBOperation("publisher", "list", start, nil)
	ObserveDBOperation("publisher", "list", start, nil)
	ObserveDBOperation("publisher", "list", start, errors.New("boom"))

	assert.Equal(t, before+2, getCounterVecValue(t, DBOperationsTotal, okLabels))
	assert.Equal(t, beforeErr+1, getCounterVecValue(t, DBOperationsTotal, errLabels))
	assert.Equal(t, beforeCount+3, getHistogramVecCount(t, DBOperationDuration, map[string]string{"entity": "publisher", "op": "list"}))
}

// TestObserveDBOperation_Result 预期内的业务结果不计入error
func TestObserveDBOperation_Result(t *testing.T) {
	InitMetrics()

	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"成功", nil, ResultOK},
		{"记录不存在", apperrors.New(apperrors.ErrCodeInventoryNotFound, "not stocked"), ResultNotFound},
		{"唯一约束冲突", apperrors.New(apperrors.ErrCodeISBNDuplicate, "isbn exists"), ResultInvalid},
		{"数据库错误", apperrors.Wrap(errors.New("disk I/O error"), "db"), ResultError},
		{"普通错误", errors.New("boom"), ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := map[string]string{"entity": "store", "op": "find", "result": tt.result}
			before := getCounterVecValue(t, DBOperationsTotal, labels)

			ObserveDBOperation("store", "find", time.Now(), tt.err)

			assert.Equal(t, before+1, getCounterVecValue(t, DBOperationsTotal, labels))
		})
	}
}

// TestRecordMenuAction 测试菜单指标
func TestRecordMenuAction(t *testing.T) {
	labels := map[string]string{"action": "add_book", "result": ResultInvalid}
	InitMetrics()
	before := getCounterVecValue(t, MenuActionsTotal, labels)

	RecordMenuAction("add_book", ResultInvalid)

	assert.Equal(t, before+1, getCounterVecValue(t, MenuActionsTotal, labels))
}

// TestRecordEventPublished 测试事件指标
func TestRecordEventPublished(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"routing_key": "book.added", "result": ResultError}
	before := getCounterVecValue(t, EventsPublishedTotal, labels)

	RecordEventPublished("book.added", errors.New("channel closed"))

	assert.Equal(t, before+1, getCounterVecValue(t, EventsPublishedTotal, labels))
}

// ==================== 辅助函数 ====================

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	require.NoError(t, counter.(prometheus.Counter).Write(&metric))
	return metric.Counter.GetValue()
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric))
	return metric.Histogram.GetSampleCount()
}
