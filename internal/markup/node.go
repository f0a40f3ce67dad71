package markup

// Node is a node of a parsed, already sanitized HTML fragment.
type Node interface {
	node()
}

// Text is a literal text leaf
type Text struct {
	Value string
}

func (Text) node() {}

// Comment covers every parsed node kind that is neither text nor element
// (comments, doctypes). Renderers drop it.
type Comment struct {
	Value string
}

func (Comment) node() {}

// Element is a tag with ordered attributes and children.
type Element struct {
	Name     string
	Attrs    Attrs
	Children []Node
}

func (*Element) node() {}

// WithAttrs returns a copy of the element carrying attrs. Children are shared.
func (e *Element) WithAttrs(attrs Attrs) *Element {
	return &Element{
		Name:     e.Name,
		Attrs:    attrs,
		Children: e.Children,
	}
}

// FirstChild returns the first child or nil
func (e *Element) FirstChild() Node {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// Attr is a single key/value attribute
type Attr struct {
	Key   string
	Value string
}

// Attrs keeps attributes in document order. Methods never modify the
// receiver; the mutating ones return a new slice.
type Attrs []Attr

// Get returns the value of key and whether it is present
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// With sets key to value, keeping the position of an existing key or
// appending a new one.
func (a Attrs) With(key, value string) Attrs {
	out := make(Attrs, 0, len(a)+1)
	found := false
	for _, attr := range a {
		if attr.Key == key {
			attr.Value = value
			found = true
		}
		out = append(out, attr)
	}
	if !found {
		out = append(out, Attr{Key: key, Value: value})
	}
	return out
}

// Without drops every listed key
func (a Attrs) Without(keys ...string) Attrs {
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		if contains(keys, attr.Key) {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
