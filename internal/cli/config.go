package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	pkgerrors "github.com/Petka17/observable/pkg/errors"
	"github.com/Petka17/observable/pkg/logging"
)

// Config holds the CLI configuration loaded from flags, environment
// variables, .env files and the config file.
type Config struct {
	ConfigFile string
	Format     string
	Delay      time.Duration
	LogLevel   string
	LogFormat  string
}

const envPrefix = "OBSERVABLE"

var formats = []string{"text", "json", "yaml"}

// loadConfig reads configuration in order of precedence:
// 1. Command-line flags (bound to v by the caller)
// 2. Environment variables (OBSERVABLE_*)
// 3. .env files
// 4. Config file (./.observable.yaml or ~/.observable.yaml)
// 5. Defaults
func loadConfig(v *viper.Viper) (*Config, error) {
	loadEnvFiles()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", "text")
	v.SetDefault("delay", 500*time.Millisecond)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "auto")

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".observable")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		ConfigFile: v.ConfigFileUsed(),
		Format:     strings.ToLower(v.GetString("format")),
		Delay:      v.GetDuration("delay"),
		LogLevel:   v.GetString("log-level"),
		LogFormat:  v.GetString("log-format"),
	}

	if !slices.Contains(formats, cfg.Format) {
		return nil, pkgerrors.NewValidationError("format", cfg.Format, "must be one of text, json, yaml")
	}
	if cfg.Delay < 0 {
		return nil, pkgerrors.NewValidationError("delay", cfg.Delay, "must not be negative")
	}

	return cfg, nil
}

// loadEnvFiles loads .env and .env.local from the working directory if
// present. Existing environment variables are not overridden.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				logging.Debug().Err(err).Str("file", file).Msg("skipping env file")
			}
		}
	}
}
