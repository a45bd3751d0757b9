package host

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RenderHTML serializes a MemNode subtree to an HTML string.
func RenderHTML(n *MemNode) string {
	var b strings.Builder
	writeHTML(&b, n)
	return b.String()
}

// WriteHTML streams a MemNode subtree as HTML to w.
func WriteHTML(w io.Writer, n *MemNode) error {
	var b strings.Builder
	writeHTML(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHTML(b *strings.Builder, n *MemNode) {
	if n == nil {
		return
	}
	if n.Leaf {
		b.WriteString(escapeHTML(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	// Sorted attributes for deterministic output.
	if len(n.Props) > 0 {
		keys := make([]string, 0, len(n.Props))
		for k := range n.Props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeAttr(b, k, n.Props[k])
		}
	}

	if voidElements[n.Tag] {
		b.WriteString(">")
		return
	}
	b.WriteByte('>')

	for _, c := range n.Children {
		writeHTML(b, c)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case bool:
		// Boolean attributes render bare when true, not at all when false.
		if v {
			b.WriteByte(' ')
			b.WriteString(key)
		}
	case nil:
		b.WriteByte(' ')
		b.WriteString(key)
	default:
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(fmt.Sprintf("%v", v)))
		b.WriteByte('"')
	}
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
func escapeAttr(s string) string {
	return escapeHTML(s)
}
