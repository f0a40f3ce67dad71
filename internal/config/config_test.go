package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gerunddev/postrender/internal/content"
	"github.com/gerunddev/postrender/internal/logger"
	"github.com/gerunddev/postrender/internal/markup"
	"github.com/gerunddev/postrender/internal/render"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CurrentServer == "" {
		t.Error("Expected CurrentServer to be set")
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.Format != "tree" {
		t.Errorf("Expected Format to be tree, got %q", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty current_server",
			modify:  func(c *Config) { c.CurrentServer = "" },
			wantErr: true,
		},
		{
			name:    "empty log_file",
			modify:  func(c *Config) { c.LogFile = "" },
			wantErr: true,
		},
		{
			name:    "empty user_link_pattern",
			modify:  func(c *Config) { c.UserLinkPattern = "" },
			wantErr: true,
		},
		{
			name:    "invalid tag_link_pattern",
			modify:  func(c *Config) { c.TagLinkPattern = `^https://([^/]+/tags/(` },
			wantErr: true,
		},
		{
			name:    "user_link_pattern with one group",
			modify:  func(c *Config) { c.UserLinkPattern = `^https://x/@([^/]+)$` },
			wantErr: true,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "yaml format",
			modify:  func(c *Config) { c.Format = "yaml" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.json")
	withConfigPath(t, testConfigPath)

	testCfg := DefaultConfig()
	testCfg.CurrentServer = "example.social"
	testCfg.Format = "json"
	testCfg.LogFile = "/tmp/postrender-test.log"

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.CurrentServer != "example.social" {
		t.Errorf("CurrentServer mismatch: got %q", loadedCfg.CurrentServer)
	}
	if loadedCfg.Format != "json" {
		t.Errorf("Format mismatch: got %q", loadedCfg.Format)
	}
	if loadedCfg.LogFile != "/tmp/postrender-test.log" {
		t.Errorf("LogFile mismatch: got %q", loadedCfg.LogFile)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	withConfigPath(t, filepath.Join(t.TempDir(), "nonexistent.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.CurrentServer != content.DefaultServer {
		t.Errorf("Expected default server, got %q", cfg.CurrentServer)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	withConfigPath(t, path)

	if err := os.WriteFile(path, []byte(`{"current_server": "fosstodon.org"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CurrentServer != "fosstodon.org" {
		t.Errorf("CurrentServer = %q", cfg.CurrentServer)
	}
	if cfg.UserLinkPattern != content.DefaultUserLinkPattern {
		t.Errorf("UserLinkPattern should default, got %q", cfg.UserLinkPattern)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"current_server": `},
		{name: "bad format", data: `{"format": "html"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			withConfigPath(t, path)
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
	}{
		{name: "tilde expansion", input: "~/test"},
		{name: "tilde only", input: "~"},
		{name: "absolute path", input: "/tmp/test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
			if tt.input == "~" && result != homeDir {
				t.Errorf("expandPath(~) = %q, want %q", result, homeDir)
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CurrentServer = "example.social"

	opts, err := cfg.RendererOptions(logger.Discard())
	if err != nil {
		t.Fatalf("RendererOptions() error = %v", err)
	}
	if opts.CurrentServer() != "example.social" {
		t.Errorf("CurrentServer() = %q", opts.CurrentServer())
	}

	r := content.New(opts)
	out := r.Transform(&markup.Element{
		Name: "a",
		Attrs: markup.Attrs{
			{Key: "href", Value: "https://other.host/tags/go"},
			{Key: "class", Value: "mention"},
		},
	})
	el, ok := out.(*render.Element)
	if !ok {
		t.Fatalf("expected element, got %#v", out)
	}
	if to, _ := el.Prop("to"); to != "/example.social/tags/go" {
		t.Errorf("to = %q", to)
	}

	cfg.TagLinkPattern = "("
	if _, err := cfg.RendererOptions(nil); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
