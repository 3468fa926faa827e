package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpose-cli/internal/auth"
	"nexpose-cli/internal/config"
)

func TestClientConfigCarriesProxyAndTLSSettings(t *testing.T) {
	cfg := clientConfig(&config.Settings{
		Host:         "console.corp",
		Port:         3780,
		Insecure:     true,
		DisableProxy: true,
		Timeout:      time.Minute,
	}, auth.Credentials{Username: "nxadmin", Password: "pw"})

	assert.Equal(t, "https://console.corp:3780/api/3", cfg.BaseURL())
	assert.Equal(t, "nxadmin", cfg.Username)
	assert.Equal(t, "pw", cfg.Password)
	assert.True(t, cfg.Insecure)
	assert.True(t, cfg.DisableProxy)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"login"},
		{"sites", "list"}, {"sites", "id"}, {"sites", "name"},
		{"templates", "list"}, {"templates", "id"}, {"templates", "name"},
		{"engines", "list"}, {"engines", "validate"},
		{"assets", "get"}, {"assets", "stale"},
		{"targets", "load"},
		{"exporter"},
	} {
		found, rest, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], found.Name(), path)
	}
}

func TestServiceConfigKeepsPasswordOffCommandLine(t *testing.T) {
	cfg := serviceConfig(&config.Settings{
		Host:     "console.corp",
		Port:     3780,
		Username: "nxadmin",
		Password: "hunter2",
		Insecure: true,
		Exporter: config.ExporterSettings{Port: "9180", StaleDays: 30},
	})

	assert.NotContains(t, cfg.Arguments, "hunter2")
	assert.NotContains(t, cfg.Arguments, "--password")
	assert.Contains(t, cfg.Arguments, "--insecure")
	assert.Equal(t, "hunter2", cfg.EnvVars["NEXPOSE_PASSWORD"])
}
