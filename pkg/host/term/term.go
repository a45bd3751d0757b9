// Package term renders in-memory host trees as styled terminal output.
// It powers the interactive demo, drawing the committed tree the way a
// browser devtools inspector would.
package term

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weft-dev/weft/pkg/host"
)

var (
	tagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	attrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// Render returns a styled multi-line rendering of the tree rooted at n.
func Render(n *host.MemNode) string {
	var b strings.Builder
	renderNode(&b, n, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, n *host.MemNode, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	if n.Leaf {
		b.WriteString(indent)
		b.WriteString(textStyle.Render(n.Text))
		b.WriteByte('\n')
		return
	}

	b.WriteString(indent)
	b.WriteString(dimStyle.Render("<"))
	b.WriteString(tagStyle.Render(n.Tag))
	for _, k := range sortedKeys(n.Props) {
		b.WriteByte(' ')
		b.WriteString(attrStyle.Render(k + "=" + formatValue(n.Props[k])))
	}
	b.WriteString(dimStyle.Render(">"))
	b.WriteByte('\n')

	for _, c := range n.Children {
		renderNode(b, c, depth+1)
	}

	b.WriteString(indent)
	b.WriteString(dimStyle.Render("</" + n.Tag + ">"))
	b.WriteByte('\n')
}

func sortedKeys(props map[string]any) []string {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return fmt.Sprintf("%v", v)
}
