package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json格式输出结构化字段", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info", "json")

		log.Info().Str("isbn", "9780000000001").Msg("book added")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "9780000000001", entry["isbn"])
		assert.Equal(t, "book added", entry["message"])
	})

	t.Run("低于级别的日志被丢弃", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "warn", "json")

		log.Info().Msg("hidden")
		assert.Zero(t, buf.Len())

		log.Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("无法识别的级别回退到info", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "verbose", "json")

		log.Debug().Msg("hidden")
		log.Info().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("console格式可读", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info", "console")

		log.Info().Msg("migrated")
		assert.Contains(t, buf.String(), "migrated")
	})
}
