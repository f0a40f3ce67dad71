package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/postrender/internal/config"
	"github.com/gerunddev/postrender/internal/styles"
)

// ShowConfig prints the config file location and the effective settings
func ShowConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to load config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Print(FormatConfig(cfg, config.ConfigPath()))
}

// FormatConfig renders cfg as a labelled listing headed by a banner
func FormatConfig(cfg *config.Config, path string) string {
	rows := []struct {
		label string
		value string
	}{
		{"Config file:", path},
		{"Server:", cfg.CurrentServer},
		{"User links:", cfg.UserLinkPattern},
		{"Tag links:", cfg.TagLinkPattern},
		{"Log file:", cfg.LogFile},
		{"Log level:", cfg.LogLevel},
		{"Format:", cfg.Format},
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render("postrender configuration") + "\n")
	for _, row := range rows {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %-15s", row.label)))
		b.WriteString(styles.ValueStyle.Render(row.value) + "\n")
	}
	return b.String()
}

// InitConfig writes the default configuration unless a config file exists
func InitConfig() {
	path := config.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		fmt.Println(styles.DimStyle.Render("Config already exists at " + path))
		return
	}

	if err := config.DefaultConfig().Save(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to write config: " + err.Error()))
		os.Exit(1)
	}
	fmt.Println(styles.SuccessStyle.Render("✓ Wrote default config to " + path))
}
