package content

import (
	"strings"

	"github.com/gerunddev/postrender/internal/markup"
)

// TreeToText concatenates the text leaves under n in document order,
// ignoring all markup.
func TreeToText(n markup.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n markup.Node) {
	switch t := n.(type) {
	case markup.Text:
		b.WriteString(t.Value)
	case *markup.Element:
		if t == nil {
			return
		}
		for _, c := range t.Children {
			writeText(b, c)
		}
	}
}

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does: every UTF-8 byte except A-Z a-z 0-9 and
// -_.!~*'() is escaped.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
