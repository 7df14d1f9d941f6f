package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（0表示成功）
// 2. Message是给调用方看的提示信息
// 3. Data是业务数据，失败时为空
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 5xxxx错误返回503，便于探活脚本只看HTTP状态码
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	status := http.StatusOK
	if !apperrors.IsClientError(appErr) {
		status = http.StatusServiceUnavailable
	}
	// 底层错误挂到gin上下文，由请求日志中间件输出
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
