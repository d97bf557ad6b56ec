package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"pabw/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := build(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("route", "/user/cart"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"route":"/user/cart"`)
}

func TestBuild_UnknownLevel(t *testing.T) {
	_, err := build(&bytes.Buffer{}, config.Log{Level: "chatty"})

	assert.Error(t, err)
}
