package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Component tags that are not plain HTML elements
const (
	Fragment            = "fragment"
	RouterLink          = "router-link"
	CodeBlock           = "code-block"
	AccountHoverWrapper = "account-hover-wrapper"
)

// Node is an engine-independent render node. A nil Node renders nothing.
type Node interface {
	renderNode()
}

// Text is copied verbatim into the output
type Text string

func (Text) renderNode() {}

// Prop is a single named prop
type Prop struct {
	Name  string
	Value string
}

// Props keeps props in the order they were set, which for pass-through
// elements is the attribute order of the source markup.
type Props []Prop

// Get returns the named prop and whether it is set
func (p Props) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

// MarshalJSON writes props as an object in their original order
func (p Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes props as a mapping in their original order
func (p Props) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, prop := range p {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Value},
		)
	}
	return node, nil
}

// Element is either an HTML tag or a named component.
type Element struct {
	Tag      string
	Props    Props
	Children []Node
}

func (*Element) renderNode() {}

// Prop returns the named prop and whether it is set
func (e *Element) Prop(name string) (string, bool) {
	return e.Props.Get(name)
}

// TextContent concatenates every text leaf under n in order.
func TextContent(n Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case Text:
		b.WriteString(string(t))
	case *Element:
		if t == nil {
			return
		}
		for _, c := range t.Children {
			writeText(b, c)
		}
	}
}

// Dump converts n into maps, slices and strings for serialization.
// Text becomes a string, a nil node becomes nil. Props stay ordered.
func Dump(n Node) any {
	switch t := n.(type) {
	case Text:
		return string(t)
	case *Element:
		if t == nil {
			return nil
		}
		out := map[string]any{"tag": t.Tag}
		if len(t.Props) > 0 {
			out["props"] = append(Props(nil), t.Props...)
		}
		if len(t.Children) > 0 {
			children := make([]any, 0, len(t.Children))
			for _, c := range t.Children {
				children = append(children, Dump(c))
			}
			out["children"] = children
		}
		return out
	default:
		return nil
	}
}
