package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/postrender/internal/render"
	"github.com/gerunddev/postrender/internal/styles"
)

var componentTags = map[string]bool{
	render.Fragment:            true,
	render.RouterLink:          true,
	render.CodeBlock:           true,
	render.AccountHoverWrapper: true,
}

// WriteTree writes n to w in the given format: tree, json or yaml
func WriteTree(w io.Writer, n render.Node, format string) error {
	switch format {
	case "tree":
		_, err := io.WriteString(w, FormatTree(n))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(render.Dump(n))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(render.Dump(n)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
}

// FormatTree renders n as an indented, styled outline
func FormatTree(n render.Node) string {
	var b strings.Builder
	formatNode(&b, n, 0)
	return b.String()
}

func formatNode(b *strings.Builder, n render.Node, depth int) {
	indent := styles.DimStyle.Render(strings.Repeat("│ ", depth))

	switch t := n.(type) {
	case render.Text:
		b.WriteString(indent + styles.TextStyle.Render(strconv.Quote(string(t))) + "\n")
	case *render.Element:
		if t == nil {
			return
		}
		tagStyle := styles.TagStyle
		if componentTags[t.Tag] {
			tagStyle = styles.ComponentStyle
		}

		line := indent + tagStyle.Render("<"+t.Tag+">")
		for _, prop := range t.Props {
			line += " " + styles.PropNameStyle.Render(prop.Name) + "=" +
				styles.PropValueStyle.Render(strconv.Quote(prop.Value))
		}
		b.WriteString(line + "\n")

		for _, c := range t.Children {
			formatNode(b, c, depth+1)
		}
	}
}
