package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/bella-cli/internal/adapters/backend"
	tomlrepo "github.com/bnema/bella-cli/internal/adapters/repo/toml"
	"github.com/bnema/bella-cli/internal/application"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "BELLA"

	keyBackendURL     = "backend.url"
	keyHealthInterval = "poll.health_interval"
	keyTailInterval   = "poll.tail_interval"
	keyDefaultCommand = "run.default_command"
	keyRecentLimit    = "logs.recent_limit"
	keyLogLevel       = "log.level"

	defaultCommand        = "services dekho"
	defaultHealthInterval = 5 * time.Second
	defaultTailInterval   = 2 * time.Second
)

type settings struct {
	BackendURL     string
	HealthInterval time.Duration
	TailInterval   time.Duration
	DefaultCommand string
	RecentLimit    int
	LogLevel       string
}

// loadConfig reads ~/.bella/config.toml when present. Every key can be
// overridden from the environment, e.g. BELLA_BACKEND_URL for backend.url.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	catalogPath, err := tomlrepo.DefaultCatalogPath()
	if err != nil {
		return nil, err
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, tomlrepo.ConfigDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyBackendURL, backend.DefaultBaseURL)
	cfg.SetDefault(keyHealthInterval, defaultHealthInterval)
	cfg.SetDefault(keyTailInterval, defaultTailInterval)
	cfg.SetDefault(keyDefaultCommand, defaultCommand)
	cfg.SetDefault(keyRecentLimit, application.DefaultRecentLogLimit)
	cfg.SetDefault(keyLogLevel, "")
	cfg.SetDefault(tomlrepo.CatalogPathKey, catalogPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func settingsFrom(cfg *viper.Viper) (settings, error) {
	s := settings{
		BackendURL:     strings.TrimSpace(cfg.GetString(keyBackendURL)),
		HealthInterval: cfg.GetDuration(keyHealthInterval),
		TailInterval:   cfg.GetDuration(keyTailInterval),
		DefaultCommand: strings.TrimSpace(cfg.GetString(keyDefaultCommand)),
		RecentLimit:    cfg.GetInt(keyRecentLimit),
		LogLevel:       strings.TrimSpace(cfg.GetString(keyLogLevel)),
	}

	if s.BackendURL == "" {
		return settings{}, errors.New("backend url is empty")
	}
	if s.HealthInterval <= 0 {
		return settings{}, fmt.Errorf("%s must be positive, got %s", keyHealthInterval, s.HealthInterval)
	}
	if s.TailInterval <= 0 {
		return settings{}, fmt.Errorf("%s must be positive, got %s", keyTailInterval, s.TailInterval)
	}
	if s.DefaultCommand == "" {
		s.DefaultCommand = defaultCommand
	}
	if s.RecentLimit <= 0 {
		s.RecentLimit = application.DefaultRecentLogLimit
	}

	return s, nil
}
