package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	opshttp "github.com/xiebiao/bookstore-admin/internal/interface/http"
	"github.com/xiebiao/bookstore-admin/internal/interface/http/handler"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
	"github.com/xiebiao/bookstore-admin/pkg/logger"
	"github.com/xiebiao/bookstore-admin/pkg/metrics"
	"github.com/xiebiao/bookstore-admin/pkg/response"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func newRouter(db handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return opshttp.NewRouter(&config.Config{}, logger.Nop(), handler.NewHealthHandler(db))
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	t.Run("数据库正常", func(t *testing.T) {
		w := get(t, newRouter(pinger{}), "/ping")
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)
	})

	t.Run("数据库不可用", func(t *testing.T) {
		w := get(t, newRouter(pinger{err: errors.New("connection refused")}), "/ping")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, apperrors.ErrCodeDatabaseError, resp.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRouter_Metrics(t *testing.T) {
	r := newRouter(pinger{})
	metrics.RecordMenuAction("list_books", metrics.ResultOK)

	w := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `bookstore_menu_actions_total{action="list_books",result="ok"}`)
}
