package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tinytelemetry/logwindow/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Timezone != model.DefaultTimezone {
		t.Errorf("timezone = %q, want %q", cfg.Timezone, model.DefaultTimezone)
	}
	if cfg.Window != 10*time.Minute {
		t.Errorf("window = %v, want 10m", cfg.Window)
	}
	if cfg.ErrorLogPath != model.DefaultErrorLogPath || cfg.AccessLogPath != model.DefaultAccessLogPath {
		t.Errorf("log paths = %q, %q", cfg.ErrorLogPath, cfg.AccessLogPath)
	}
	if !cfg.CopyOnConvert {
		t.Error("copy-on-convert should default to true")
	}
	if cfg.DefaultLogType != "error" {
		t.Errorf("default-log-type = %q, want error", cfg.DefaultLogType)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
timezone: UTC
window: 5m
access-log-path: /srv/nginx/access.log
default-log-type: access
copy-on-convert: false
log-file: ~/logs/logwindow.log
`)
	t.Setenv("LOGWINDOW_ZONE_LABEL", "Server")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q, want %q", cfg.ConfigPath, path)
	}
	if cfg.Timezone != "UTC" || cfg.Window != 5*time.Minute {
		t.Errorf("timezone/window = %q/%v", cfg.Timezone, cfg.Window)
	}
	if cfg.AccessLogPath != "/srv/nginx/access.log" {
		t.Errorf("access-log-path = %q", cfg.AccessLogPath)
	}
	if cfg.CopyOnConvert {
		t.Error("copy-on-convert = true, want false")
	}
	if cfg.ZoneLabel != "Server" {
		t.Errorf("zone-label = %q, want Server from env", cfg.ZoneLabel)
	}
	if filepath.Base(cfg.LogFile) != "logwindow.log" || cfg.LogFile[0] != '/' {
		t.Errorf("log-file = %q, want expanded path", cfg.LogFile)
	}
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		body string
	}{
		{"zero window", "window: 0s\n"},
		{"bad log type", "default-log-type: syslog\n"},
		{"bad timezone", "timezone: Mars/Olympus_Mons\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewConverter(t *testing.T) {
	cfg := appConfig{Timezone: "America/Los_Angeles", Window: 10 * time.Minute}
	conv, loc, err := cfg.newConverter()
	if err != nil {
		t.Fatalf("newConverter: %v", err)
	}
	if loc.String() != "America/Los_Angeles" || conv.Location() != loc {
		t.Errorf("location = %v", loc)
	}
	if conv.Span() != 10*time.Minute {
		t.Errorf("span = %v", conv.Span())
	}
}
