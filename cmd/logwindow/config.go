package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/logwindow/internal/logger"
	"github.com/tinytelemetry/logwindow/internal/model"
	"github.com/tinytelemetry/logwindow/internal/timewindow"
)

// appConfig is internal runtime configuration.
type appConfig struct {
	Timezone       string        `mapstructure:"timezone"`
	ZoneLabel      string        `mapstructure:"zone-label"`
	Window         time.Duration `mapstructure:"window"`
	ErrorLogPath   string        `mapstructure:"error-log-path"`
	AccessLogPath  string        `mapstructure:"access-log-path"`
	DefaultLogType string        `mapstructure:"default-log-type"`
	CopyOnConvert  bool          `mapstructure:"copy-on-convert"`
	LogLevel       string        `mapstructure:"log-level"`
	LogFile        string        `mapstructure:"log-file"`
	ConfigPath     string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LOGWINDOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("timezone", model.DefaultTimezone)
	v.SetDefault("zone-label", "")
	v.SetDefault("window", model.DefaultWindowSpan)
	v.SetDefault("error-log-path", model.DefaultErrorLogPath)
	v.SetDefault("access-log-path", model.DefaultAccessLogPath)
	v.SetDefault("default-log-type", model.DefaultLogType)
	v.SetDefault("copy-on-convert", true)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "logwindow", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.Window <= 0 {
		return cfg, fmt.Errorf("invalid window: %s", cfg.Window)
	}
	if _, err := model.ParseLogType(cfg.DefaultLogType); err != nil {
		return cfg, fmt.Errorf("invalid default-log-type: %w", err)
	}
	if _, err := timewindow.LoadLocation(cfg.Timezone); err != nil {
		return cfg, err
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}

// newConverter builds the converter described by cfg and returns the source
// location alongside it.
func (cfg appConfig) newConverter() (*timewindow.Converter, *time.Location, error) {
	loc, err := timewindow.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, err
	}
	conv := timewindow.New(
		timewindow.WithLocation(loc),
		timewindow.WithZoneLabel(cfg.ZoneLabel),
		timewindow.WithSpan(cfg.Window),
		timewindow.WithLogPaths(cfg.ErrorLogPath, cfg.AccessLogPath),
	)
	return conv, loc, nil
}

// openLogger returns a logger writing to cfg.LogFile, or to fallback when no
// file is configured. The returned close func is never nil.
func (cfg appConfig) openLogger(fallback *os.File) (*logger.Logger, func() error, error) {
	if cfg.LogFile == "" {
		if fallback == nil {
			return logger.Nop(), func() error { return nil }, nil
		}
		return logger.New(cfg.LogLevel, fallback), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger.New(cfg.LogLevel, f), f.Close, nil
}
