package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"nexpose-cli/internal/auth"
	"nexpose-cli/internal/client"
	"nexpose-cli/internal/config"
	"nexpose-cli/internal/lookup"
	"nexpose-cli/internal/targets"
)

var (
	_ lookup.Console    = (*client.NexposeClient)(nil)
	_ targets.SiteSaver = (*client.NexposeClient)(nil)
)

func clientConfig(s *config.Settings, creds auth.Credentials) client.ClientConfig {
	return client.ClientConfig{
		Host:         s.Host,
		Port:         s.Port,
		Username:     creds.Username,
		Password:     creds.Password,
		Insecure:     s.Insecure,
		DisableProxy: s.DisableProxy,
		Timeout:      s.Timeout,
	}
}

// connect builds an authenticated client from config, prompting for any
// missing credentials.
func connect(ctx context.Context) (*client.NexposeClient, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	if settings.Host == "" {
		return nil, errors.New("no console configured, run 'nexpose-cli login --host <console>' first")
	}

	creds, err := auth.NewTerminalPrompter().Complete(auth.Credentials{
		Username: settings.Username,
		Password: settings.Password,
	})
	if err != nil {
		return nil, err
	}

	api := client.New(clientConfig(settings, creds))
	sess, err := api.Login(ctx)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"console": sess.BaseURL, "user": sess.Username}).Debug("connected")
	return api, nil
}

// mustConnect exits the process when the console cannot be reached.
func mustConnect(ctx context.Context) *client.NexposeClient {
	api, err := connect(ctx)
	if err != nil {
		die("Error connecting to console: %v", err)
	}
	return api
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// printJSON writes v to stdout when --json is set and reports whether it did.
func printJSON(v any) bool {
	if !jsonOutput {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		die("Error encoding JSON: %v", err)
	}
	return true
}
