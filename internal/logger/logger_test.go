package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/ecs-canary/ecs-canary/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.New(config.Logger{Format: "JSON", Level: "debug"}, buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())

		log.WithField("deployment_id", "d-1").Info("cutover done")

		line := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "cutover done", line["msg"])
		assert.Equal(t, "d-1", line["deployment_id"])
		assert.Equal(t, "info", line["level"])
	})

	t.Run("text output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logger.New(config.Logger{Format: "text", Level: "warn"}, buf)
		require.NoError(t, err)

		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "msg=kept")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "xml", Level: "info"}, &bytes.Buffer{})
		assert.EqualError(t, err, `invalid log format: "xml"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "json", Level: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
