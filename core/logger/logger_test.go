package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skrivehjelp/kit/core/logger"
)

func TestNew(t *testing.T) {
	t.Run("text output by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf))

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithWriter(&buf),
			logger.WithJSON(),
			logger.WithService("skrivehjelp"),
		)

		log.Info("hello", logger.Component("i18n"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "skrivehjelp", record["service"])
		assert.Equal(t, "i18n", record["component"])
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithWriter(&buf),
			logger.WithLevel(slog.LevelWarn),
		)

		log.Info("dropped")
		log.Warn("kept")
		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestAttrs(t *testing.T) {
	t.Run("zero values yield empty attrs", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Component(""))
		assert.Equal(t, slog.Attr{}, logger.Locale(""))
		assert.Equal(t, slog.Attr{}, logger.TranslationKey(""))
		assert.Equal(t, slog.Attr{}, logger.Document(""))
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("non-zero values carry keys", func(t *testing.T) {
		assert.Equal(t, "locale", logger.Locale("nn").Key)
		assert.Equal(t, "translation_key", logger.TranslationKey("a.b").Key)
		assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	})
}
