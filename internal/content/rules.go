package content

import (
	"regexp"
	"strings"

	"github.com/gerunddev/postrender/internal/markup"
	"github.com/gerunddev/postrender/internal/render"
)

const languagePrefix = "language-"

// Strips one leading label when at least two dots are present.
// foo.co.uk becomes co.uk, a known limitation.
var registrableDomain = regexp.MustCompile(`(.+\.)(.+\..+)`)

// codeBlock turns <pre><code class="language-x">…</code></pre> into a
// code-block component carrying the language and the encoded source.
func (r *Renderer) codeBlock(el *markup.Element) Result {
	if el.Name != "pre" {
		return noMatch
	}
	code, ok := el.FirstChild().(*markup.Element)
	if !ok || code == nil || code.Name != "code" {
		return noMatch
	}

	source := ""
	if first := code.FirstChild(); first != nil {
		source = TreeToText(first)
	}

	var props render.Props
	if lang, ok := codeLanguage(code); ok {
		props = append(props, render.Prop{Name: "lang", Value: lang})
	}
	props = append(props, render.Prop{Name: "code", Value: EncodeURIComponent(source)})

	return Result{
		Kind: Rendered,
		Node: &render.Element{
			Tag:      render.CodeBlock,
			Props:    props,
			Children: []render.Node{},
		},
	}
}

func codeLanguage(code *markup.Element) (string, bool) {
	class, ok := code.Attrs.Get("class")
	if !ok {
		return "", false
	}
	for _, token := range strings.Fields(class) {
		if strings.HasPrefix(token, languagePrefix) {
			return strings.TrimPrefix(token, languagePrefix), true
		}
	}
	return "", false
}

// mention rewrites anchors classed "mention". User permalinks become an
// account hover wrapper around a local link; hashtag permalinks are pointed
// at the current server's tag page and then emitted normally.
func (r *Renderer) mention(el *markup.Element) Result {
	if el.Name != "a" {
		return noMatch
	}
	class, _ := el.Attrs.Get("class")
	if !hasClass(class, "mention") {
		return noMatch
	}
	href, _ := el.Attrs.Get("href")
	if href == "" {
		return noMatch
	}

	if m := r.userLink.FindStringSubmatch(href); len(m) >= 3 {
		server, username := m[1], m[2]
		anchor := el.WithAttrs(el.Attrs.
			With("href", "/"+server+"/@"+username).
			Without("target"))

		return Result{
			Kind: Rendered,
			Node: &render.Element{
				Tag: render.AccountHoverWrapper,
				Props: render.Props{
					{Name: "handle", Value: "@" + username + "@" + NormalizeDomain(server)},
					{Name: "class", Value: "inline-block"},
				},
				Children: []render.Node{r.Emit(anchor)},
			},
		}
	}

	if m := r.tagLink.FindStringSubmatch(href); len(m) >= 3 {
		name := m[2]
		return Result{
			Kind:    Decline,
			Element: el.WithAttrs(el.Attrs.With("href", "/"+r.currentServer()+"/tags/"+name)),
		}
	}

	return noMatch
}

// NormalizeDomain shortens a server host for display in handles,
// e.g. sub.example.com becomes example.com.
func NormalizeDomain(server string) string {
	return registrableDomain.ReplaceAllString(server, "$2")
}

func hasClass(class, name string) bool {
	for _, token := range strings.Fields(class) {
		if token == name {
			return true
		}
	}
	return false
}
