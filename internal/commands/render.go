package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/gerunddev/postrender/internal/config"
	"github.com/gerunddev/postrender/internal/content"
	"github.com/gerunddev/postrender/internal/logger"
	"github.com/gerunddev/postrender/internal/styles"
)

// Render renders a post body from a file or stdin and prints the tree
func Render(args []string) {
	errorStyle := styles.ErrorStyle

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errorStyle.Render("✗ Failed to load config: " + err.Error()))
		os.Exit(1)
	}

	fs := flag.NewFlagSet("render", flag.ExitOnError)
	format := fs.String("format", cfg.Format, "output format: tree, json or yaml")
	server := fs.String("server", cfg.CurrentServer, "current server used for hashtag links")
	verbose := fs.Bool("verbose", false, "log rule decisions to stderr")
	_ = fs.Parse(args) //nolint:errcheck // ExitOnError

	cfg.CurrentServer = *server
	cfg.Format = *format
	if err := cfg.Validate(); err != nil {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	l, cleanup, err := newLogger(cfg, *verbose)
	if err != nil {
		fmt.Println(errorStyle.Render("✗ Failed to open log file: " + err.Error()))
		os.Exit(1)
	}
	defer cleanup()
	l.ConfigLoaded(config.ConfigPath(), cfg.CurrentServer)

	input, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Println(errorStyle.Render("✗ Failed to read input: " + err.Error()))
		os.Exit(1)
	}

	opts, err := cfg.RendererOptions(l)
	if err != nil {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}

	if err := RenderTo(os.Stdout, content.New(opts), input, cfg.Format); err != nil {
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}
}

// RenderTo renders html with r and writes the tree to w
func RenderTo(w io.Writer, r *content.Renderer, html, format string) error {
	tree, err := r.RenderContent(html, nil)
	if err != nil {
		return err
	}
	return WriteTree(w, tree, format)
}

func newLogger(cfg *config.Config, verbose bool) (*logger.Logger, func(), error) {
	if verbose {
		return logger.NewWithLevel(os.Stderr, log.DebugLevel), func() {}, nil
	}
	return logger.NewFileLogger(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
