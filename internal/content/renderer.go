// Package content turns parsed post HTML into render trees, rewriting
// internal links, mentions, hashtags and code blocks on the way.
package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gerunddev/postrender/internal/logger"
	"github.com/gerunddev/postrender/internal/markup"
	"github.com/gerunddev/postrender/internal/render"
)

// Default permalink shapes and server
const (
	DefaultUserLinkPattern = `^https?://([^/]+)/@([^/]+)$`
	DefaultTagLinkPattern  = `^https?://([^/]+)/tags/([^/]+)$`
	DefaultServer          = "mastodon.social"
)

// Options configures a Renderer. Zero fields fall back to defaults.
type Options struct {
	// UserLink matches mention permalinks, capturing server then username.
	UserLink *regexp.Regexp
	// TagLink matches hashtag permalinks, capturing server then tag name.
	TagLink *regexp.Regexp
	// CurrentServer is read on every hashtag rewrite.
	CurrentServer func() string
	Parser        markup.Parser
	Logger        *logger.Logger
}

// Renderer converts markup trees into render trees. It holds no per-call
// state and is safe for concurrent use when CurrentServer is.
type Renderer struct {
	userLink      *regexp.Regexp
	tagLink       *regexp.Regexp
	currentServer func() string
	parser        markup.Parser
	log           *logger.Logger
	rules         []Rule
}

// New creates a renderer
func New(opts Options) *Renderer {
	r := &Renderer{
		userLink:      opts.UserLink,
		tagLink:       opts.TagLink,
		currentServer: opts.CurrentServer,
		parser:        opts.Parser,
		log:           opts.Logger,
	}
	if r.userLink == nil {
		r.userLink = regexp.MustCompile(DefaultUserLinkPattern)
	}
	if r.tagLink == nil {
		r.tagLink = regexp.MustCompile(DefaultTagLinkPattern)
	}
	if r.currentServer == nil {
		r.currentServer = func() string { return DefaultServer }
	}
	if r.parser == nil {
		r.parser = markup.HTMLParser{}
	}
	if r.log == nil {
		r.log = logger.Discard()
	}

	// Order matters: first match wins
	r.rules = []Rule{
		{Name: "code-block", Apply: r.codeBlock},
		{Name: "mention", Apply: r.mention},
	}
	return r
}

// RenderContent parses raw post HTML and renders every top-level node
// into a single fragment.
func (r *Renderer) RenderContent(content string, emojis map[string]markup.Emoji) (*render.Element, error) {
	renderID := uuid.New().String()[:8]
	start := time.Now()

	tree, err := r.parser.Parse(content, emojis)
	if err != nil {
		r.log.ParseError(renderID, err)
		return nil, fmt.Errorf("failed to render content: %w", err)
	}

	out := &render.Element{
		Tag:      render.Fragment,
		Children: r.transformAll(tree.Children),
	}

	r.log.ContentRendered(renderID, len(out.Children), time.Since(start))
	return out, nil
}

// Transform renders a single markup node, applying the rewrite rules to
// elements before their children are visited. Unknown node kinds yield nil.
func (r *Renderer) Transform(n markup.Node) render.Node {
	switch t := n.(type) {
	case markup.Text:
		return render.Text(t.Value)
	case *markup.Element:
		if t == nil {
			return nil
		}
		res := r.Classify(t)
		switch res.Kind {
		case Rendered:
			return res.Node
		case Decline:
			if res.Element == nil {
				return nil
			}
			return r.Emit(res.Element)
		}
		return nil
	default:
		r.log.NodeDropped(fmt.Sprintf("%T", n))
		return nil
	}
}

// Emit renders el itself without consulting the rewrite rules; its
// children still go through Transform. Internal links become router links.
func (r *Renderer) Emit(el *markup.Element) *render.Element {
	if el == nil {
		return nil
	}

	href, _ := el.Attrs.Get("href")
	if el.Name == "a" && isInternalLink(href) {
		attrs := el.Attrs.With("to", href).Without("href", "target")
		return &render.Element{
			Tag:      render.RouterLink,
			Props:    propsOf(attrs),
			Children: r.transformAll(el.Children),
		}
	}

	return &render.Element{
		Tag:      el.Name,
		Props:    propsOf(el.Attrs),
		Children: r.transformAll(el.Children),
	}
}

// transformAll renders nodes in order, leaving out dropped ones
func (r *Renderer) transformAll(nodes []markup.Node) []render.Node {
	out := make([]render.Node, 0, len(nodes))
	for _, n := range nodes {
		if rn := r.Transform(n); rn != nil {
			out = append(out, rn)
		}
	}
	return out
}

// propsOf copies attributes into props, keeping their order
func propsOf(attrs markup.Attrs) render.Props {
	props := make(render.Props, 0, len(attrs))
	for _, attr := range attrs {
		props = append(props, render.Prop{Name: attr.Key, Value: attr.Value})
	}
	return props
}

func isInternalLink(href string) bool {
	return strings.HasPrefix(href, "/") || strings.HasPrefix(href, ".")
}
