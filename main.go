package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/postrender/internal/commands"
	"github.com/gerunddev/postrender/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "render", "r":
		commands.Render(os.Args[2:])
	case "config":
		if len(os.Args) > 2 && os.Args[2] == "init" {
			commands.InitConfig()
			return
		}
		commands.ShowConfig()
	case "version", "-v", "--version":
		fmt.Printf("postrender v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`postrender - Render post HTML into a component tree

Usage:
  postrender <command> [options]

Commands:
  render, r     Render a post body (file argument or stdin)
  config        Show the effective configuration
  config init   Write the default configuration file
  version       Show version information
  help          Show this help message

Render options:
  --format      tree, json or yaml
  --server      current server used for hashtag links
  --verbose     log rule decisions to stderr

Examples:
  postrender render post.html
  curl -s https://example.social/api/v1/statuses/1 | jq -r .content | postrender render --format json
  postrender render --server fosstodon.org --format yaml post.html

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
