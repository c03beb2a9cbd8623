package shared

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", "json")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown", "player", "random-shot")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"player":"random-shot"`)

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)
}
