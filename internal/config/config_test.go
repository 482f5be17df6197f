package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crxdev/crxskill/internal/bundle"
	crxerrors "github.com/crxdev/crxskill/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Defaults.Scope != "global" {
		t.Errorf("Defaults.Scope = %q, want global", cfg.Defaults.Scope)
	}
	if cfg.Defaults.Source != "remote" {
		t.Errorf("Defaults.Source = %q, want remote", cfg.Defaults.Source)
	}
	if cfg.Remote.URL != bundle.RemoteURL {
		t.Errorf("Remote.URL = %q", cfg.Remote.URL)
	}
	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, want git", cfg.Git.Binary)
	}
	if cfg.Logging.Level != LogLevelInfo {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != LogFormatText {
		t.Errorf("Logging.Format = %q, want text", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[defaults]
scope = "local"

[git]
binary = "/usr/local/bin/git"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Defaults.Scope != "local" {
		t.Errorf("Defaults.Scope = %q, want local", cfg.Defaults.Scope)
	}
	// Unset keys keep their defaults.
	if cfg.Defaults.Source != "remote" {
		t.Errorf("Defaults.Source = %q, want remote", cfg.Defaults.Source)
	}
	if cfg.Git.Binary != "/usr/local/bin/git" {
		t.Errorf("Git.Binary = %q", cfg.Git.Binary)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.Scope != "global" {
		t.Errorf("missing file should yield defaults, got scope %q", cfg.Defaults.Scope)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromDir_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".crxskill")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatal(err)
	}
	globalConf := `
[defaults]
scope = "local"

[remote]
url = "https://example.com/global.git"
`
	if err := os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(globalConf), 0644); err != nil {
		t.Fatal(err)
	}

	project := t.TempDir()
	projectDir := filepath.Join(project, ".crxskill")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatal(err)
	}
	projectConf := `
[remote]
url = "https://example.com/project.git"
`
	if err := os.WriteFile(filepath.Join(projectDir, "config.toml"), []byte(projectConf), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(project)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}

	// Global config applies where the project is silent.
	if cfg.Defaults.Scope != "local" {
		t.Errorf("Defaults.Scope = %q, want local (from global config)", cfg.Defaults.Scope)
	}
	// Project config wins where both speak.
	if cfg.Remote.URL != "https://example.com/project.git" {
		t.Errorf("Remote.URL = %q, want project value", cfg.Remote.URL)
	}
}

func TestLoadFromDir_NoConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if cfg.Remote.URL != bundle.RemoteURL {
		t.Errorf("Remote.URL = %q, want default", cfg.Remote.URL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad scope", func(c *Config) { c.Defaults.Scope = "everywhere" }},
		{"bad source", func(c *Config) { c.Defaults.Source = "ftp" }},
		{"empty url", func(c *Config) { c.Remote.URL = "" }},
		{"empty git binary", func(c *Config) { c.Git.Binary = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !crxerrors.HasCode(err, crxerrors.CodeConfigInvalidValue) {
				t.Errorf("error code = %q, want %q", crxerrors.Code(err), crxerrors.CodeConfigInvalidValue)
			}
		})
	}
}

func TestLogFile(t *testing.T) {
	cfg := Default()
	if got := cfg.LogFile("/base"); got != "" {
		t.Errorf("LogFile = %q, want empty when unset", got)
	}

	cfg.Logging.File = "crxskill.log"
	if got := cfg.LogFile("/base"); got != filepath.Join("/base", "crxskill.log") {
		t.Errorf("LogFile = %q", got)
	}

	cfg.Logging.File = "/var/log/crxskill.log"
	if got := cfg.LogFile("/base"); got != "/var/log/crxskill.log" {
		t.Errorf("absolute LogFile = %q", got)
	}
}
