package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"

	"github.com/gerunddev/postrender/internal/content"
	"github.com/gerunddev/postrender/internal/logger"
)

// Config represents the postrender configuration
type Config struct {
	CurrentServer   string `json:"current_server"`
	UserLinkPattern string `json:"user_link_pattern"`
	TagLinkPattern  string `json:"tag_link_pattern"`
	LogFile         string `json:"log_file"`
	LogLevel        string `json:"log_level"`
	Format          string `json:"format"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		CurrentServer:   content.DefaultServer,
		UserLinkPattern: content.DefaultUserLinkPattern,
		TagLinkPattern:  content.DefaultTagLinkPattern,
		LogFile:         "/tmp/postrender.log",
		LogLevel:        "info",
		Format:          "tree",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "postrender", "config.json")
	}
	return filepath.Join(home, ".config", "postrender", "config.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Start from defaults so partial files only override what they set
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CurrentServer == "" {
		return fmt.Errorf("current_server cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}

	if _, err := c.UserLink(); err != nil {
		return err
	}
	if _, err := c.TagLink(); err != nil {
		return err
	}

	validFormats := map[string]bool{
		"tree": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format '%s': must be one of: tree, json, yaml", c.Format)
	}

	return nil
}

// UserLink compiles the user permalink pattern. It must capture server and username.
func (c *Config) UserLink() (*regexp.Regexp, error) {
	return compilePattern("user_link_pattern", c.UserLinkPattern, 2)
}

// TagLink compiles the hashtag permalink pattern. It must capture server and tag name.
func (c *Config) TagLink() (*regexp.Regexp, error) {
	return compilePattern("tag_link_pattern", c.TagLinkPattern, 2)
}

func compilePattern(field, pattern string, groups int) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%s cannot be empty", field)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	if re.NumSubexp() < groups {
		return nil, fmt.Errorf("%s must have at least %d capture groups, has %d", field, groups, re.NumSubexp())
	}
	return re, nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}

// RendererOptions builds renderer options from the configuration
func (c *Config) RendererOptions(log *logger.Logger) (content.Options, error) {
	userLink, err := c.UserLink()
	if err != nil {
		return content.Options{}, err
	}
	tagLink, err := c.TagLink()
	if err != nil {
		return content.Options{}, err
	}

	server := c.CurrentServer
	return content.Options{
		UserLink:      userLink,
		TagLink:       tagLink,
		CurrentServer: func() string { return server },
		Logger:        log,
	}, nil
}
