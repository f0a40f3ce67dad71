package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Emoji is a server-defined custom emoji
type Emoji struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
	StaticURL string `json:"static_url"`
}

// Parser turns raw post HTML into a markup tree rooted at a synthetic element.
type Parser interface {
	Parse(content string, emojis map[string]Emoji) (*Element, error)
}

// HTMLParser parses fragments with golang.org/x/net/html. It expects input
// that is already sanitized and does not substitute custom emojis; the
// emoji table is accepted so that callers can swap in a parser that does.
type HTMLParser struct{}

// Parse parses content as the body of a <div>.
func (HTMLParser) Parse(content string, _ map[string]Emoji) (*Element, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	root := &Element{Name: "root"}
	for _, n := range nodes {
		root.Children = append(root.Children, fromHTML(n))
	}
	return root, nil
}

func fromHTML(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return Text{Value: n.Data}
	case html.ElementNode:
		el := &Element{Name: n.Data}
		for _, attr := range n.Attr {
			el.Attrs = append(el.Attrs, Attr{Key: attr.Key, Value: attr.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			el.Children = append(el.Children, fromHTML(c))
		}
		return el
	default:
		return Comment{Value: n.Data}
	}
}
