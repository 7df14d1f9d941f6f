// Package logger 基于zerolog的结构化日志
//
// 日志统一写到stderr，stdout留给菜单和列表输出，两者互不干扰。
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New 根据级别和格式创建Logger
//
//	format: console（人类可读，带颜色）| json（每行一个JSON对象）
//	level:  debug | info | warn | error，无法识别时使用info
func New(level, format string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter 同New，但可以指定输出目标（测试用）
func NewWithWriter(w io.Writer, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Nop 丢弃所有日志
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
