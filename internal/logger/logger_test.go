package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpose-cli/internal/config"
)

func TestConfigureLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()

	require.NoError(t, configure(l, config.LogSettings{Level: "warn", Format: "json"}, &buf))
	l.Info("hidden")
	l.WithField("site", 3).Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"site":3`)
}

func TestConfigureRejectsBadInput(t *testing.T) {
	l := logrus.New()
	assert.Error(t, configure(l, config.LogSettings{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, configure(l, config.LogSettings{Level: "info", Format: "xml"}, &bytes.Buffer{}))
}

func TestConfigureFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "nexpose-cli.log")
	l := logrus.New()

	require.NoError(t, configure(l, config.LogSettings{Level: "info", File: path}, &buf))
	l.Info("to both")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to both")
	assert.Contains(t, buf.String(), "to both")
}
