// Package config loads the CLI's settings. Precedence, lowest to highest:
// built-in defaults, the config file, a .env file in the working directory,
// then EFOPS_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sergiomgn/EasyFinance/pkg/shared"
	"github.com/sergiomgn/EasyFinance/pkg/xdg"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	LogLevel  string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	RepoDir   string `mapstructure:"repo_dir" validate:"omitempty,dir"`
	DryRun    bool   `mapstructure:"dry_run"`
	Telemetry bool   `mapstructure:"telemetry"`
}

// Load resolves the configuration. A missing config file or .env file is
// not an error; an unreadable or invalid one is.
func Load() (*Config, error) {
	// .env values become process environment before viper reads it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, cerr.Wrap(err, "loading .env")
	}

	v := viper.New()
	v.SetConfigName(".efops")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Dir(xdg.XDGConfigPath(shared.AppID, "config.yaml")))

	v.SetEnvPrefix("EFOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("repo_dir", ".")
	v.SetDefault("dry_run", false)
	v.SetDefault("telemetry", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			return nil, cerr.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cerr.Wrap(err, "decoding config")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, cerr.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}
