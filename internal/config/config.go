package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	fileName  = ".nexpose-cli"
	envPrefix = "NEXPOSE"
)

// Settings is the resolved configuration for a command run.
type Settings struct {
	Host         string           `mapstructure:"host"`
	Port         int              `mapstructure:"port"`
	Username     string           `mapstructure:"username"`
	Password     string           `mapstructure:"password"`
	Insecure     bool             `mapstructure:"insecure"`
	DisableProxy bool             `mapstructure:"disable_proxy"`
	Timeout      time.Duration    `mapstructure:"timeout"`
	Log          LogSettings      `mapstructure:"log"`
	Exporter     ExporterSettings `mapstructure:"exporter"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type ExporterSettings struct {
	Port      string `mapstructure:"port"`
	StaleDays int    `mapstructure:"stale_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 3780)
	v.SetDefault("insecure", false)
	v.SetDefault("disable_proxy", true)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("exporter.port", "9180")
	v.SetDefault("exporter.stale_days", 30)

	// keys without a default are invisible to AutomaticEnv during Unmarshal
	v.SetDefault("host", "")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("log.file", "")
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) error {
	return initViper(viper.GetViper(), cfgFile)
}

func initViper(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".nexpose-cli" (without extension).
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(fileName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves the current Settings from the global viper instance.
func Load() (*Settings, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	s.Host = strings.TrimRight(s.Host, "/")
	return &s, nil
}

// SaveConsole persists the console location and user to the config file.
// Only what the file already holds is rewritten, so a password supplied by
// flag or environment never lands on disk.
func SaveConsole(host string, port int, username string, insecure bool) error {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, fileName+".yaml")
	}
	return saveConsole(path, host, port, username, insecure)
}

func saveConsole(path, host string, port int, username string, insecure bool) error {
	w := viper.New()
	w.SetConfigFile(path)
	if err := w.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	w.Set("host", host)
	w.Set("port", port)
	w.Set("username", username)
	w.Set("insecure", insecure)

	return w.WriteConfigAs(path)
}
