package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders markdown for terminal views and recreates the renderer when wrap width changes.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render converts markdown input into ANSI-styled terminal text with the requested wrap width.
func (r *markdownRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}

	wrapWidth := max(width, 24)
	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return markdown
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(rendered, "\n")
}

// helpMarkdown builds the full help page from both key tables.
func helpMarkdown(boardKeys [][]key.Binding, todoKeys [][]key.Binding) string {
	var b strings.Builder
	b.WriteString("# projectarium\n\n")
	b.WriteString("Projects move left to right through **Abandoned**, **Backlog**, **Active** and **Done**. ")
	b.WriteString("Cards are ordered by priority, highest first, then by name.\n\n")
	writeBindingTable(&b, "Board", boardKeys)
	writeBindingTable(&b, "Todo list", todoKeys)
	b.WriteString("Upper-case launch keys open the project and then quit.\n")
	return b.String()
}

// writeBindingTable appends one markdown table of bindings.
func writeBindingTable(b *strings.Builder, title string, groups [][]key.Binding) {
	fmt.Fprintf(b, "## %s\n\n| key | action |\n| --- | --- |\n", title)
	for _, group := range groups {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n")
}
