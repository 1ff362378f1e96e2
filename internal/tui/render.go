package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/hylla/projectarium/internal/board"
	"github.com/hylla/projectarium/internal/domain"
)

// Card and layout heights in terminal rows.
const (
	cardRows       = 3
	activeCardRows = 6
	headerRows     = 1
	footerRows     = 2
)

var (
	colorText      = lipgloss.Color("252")
	colorBland     = lipgloss.Color("250")
	colorMuted     = lipgloss.Color("241")
	colorDim       = lipgloss.Color("238")
	colorHighlight = lipgloss.Color("212")
)

// columnColors holds the colored-mode accent for each status column.
var columnColors = [domain.StatusCount]color.Color{
	lipgloss.Color("160"),
	lipgloss.Color("33"),
	lipgloss.Color("11"),
	lipgloss.Color("34"),
}

// heatColor maps a live todo count to a card border color.
func heatColor(count int) color.Color {
	switch {
	case count <= 0:
		return lipgloss.Color("240")
	case count <= 3:
		return lipgloss.Color("34")
	case count <= 6:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("196")
	}
}

// theme is the set of colors one column is drawn with.
type theme struct {
	border color.Color
	title  color.Color
	text   color.Color
	card   func(todoCount int) color.Color
}

// themeFor returns the column theme for a display mode.
func themeFor(mode board.Mode, status domain.Status) theme {
	switch mode {
	case board.ModeBland:
		return theme{
			border: colorBland,
			title:  colorText,
			text:   colorText,
			card:   func(int) color.Color { return colorBland },
		}
	case board.ModeDim:
		return theme{
			border: colorDim,
			title:  colorDim,
			text:   colorDim,
			card:   func(int) color.Color { return colorDim },
		}
	default:
		accent := columnColors[status.Index()]
		return theme{
			border: accent,
			title:  accent,
			text:   colorText,
			card:   heatColor,
		}
	}
}

// panelWidth returns the outer width of one column panel.
func (m Model) panelWidth() int {
	return max(m.width/domain.StatusCount, 16)
}

// panelHeight returns the outer height of one column panel.
func (m Model) panelHeight() int {
	return max(m.height-headerRows-footerRows, 8)
}

// cardArea returns the rows available for cards inside a panel.
func (m Model) cardArea() int {
	// border top and bottom plus the title row
	return max(m.panelHeight()-3, activeCardRows)
}

// scrollStart returns the first visible card so the active card fits in rows.
func scrollStart(n, active, rows int) int {
	if active < 0 || active >= n {
		return 0
	}
	start := 0
	for start < active && (active-start)*cardRows+activeCardRows > rows {
		start++
	}
	return start
}

// renderPanel draws column i with its title and visible cards.
func (m Model) renderPanel(i int) string {
	col := m.machine.Column(i)
	th := themeFor(m.machine.Mode(), col.Status)
	inner := m.panelWidth() - 2
	rows := m.cardArea()

	titleStyle := lipgloss.NewStyle().Foreground(th.title)
	if i == m.machine.ActiveWindow() {
		titleStyle = titleStyle.Bold(true)
	}
	lines := []string{titleStyle.Render(centerRow(fmt.Sprintf(" %s (%d) ", col.Status, col.Len()), inner))}

	active := -1
	if i == m.machine.ActiveWindow() {
		active = m.machine.ActiveCard()
	}
	if col.Len() == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorMuted).Render(centerRow("(empty)", inner)))
	}
	used := 0
	for idx := scrollStart(col.Len(), active, rows); idx < col.Len(); idx++ {
		h := cardRows
		if idx == active {
			h = activeCardRows
		}
		if used+h > rows {
			break
		}
		lines = append(lines, m.renderCard(col.Cards[idx], idx == active, th, inner))
		used += h
	}

	content := fitLines(strings.Join(lines, "\n"), rows+1)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.border).
		Render(padBlock(content, inner))
}

// renderCard draws one card exactly width cells wide.
func (m Model) renderCard(p domain.Project, active bool, th theme, width int) string {
	inner := max(width-4, 1)
	language := ""
	if m.showLanguage {
		language = p.Language
	}
	textStyle := lipgloss.NewStyle().Foreground(th.text)
	lines := []string{textStyle.Bold(active).Render(fitRow(p.Name, language, inner))}
	border := lipgloss.RoundedBorder()
	if active {
		border = lipgloss.ThickBorder()
		lines = append(lines,
			textStyle.Render(centerRow(p.Description, inner)),
			textStyle.Render(fitRow(fmt.Sprintf("priority: %d", p.Priority), "", inner)),
			lipgloss.NewStyle().Foreground(th.card(p.TodoCount)).Render(fitRow(fmt.Sprintf("items: %d", p.TodoCount), "", inner)),
		)
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(th.card(p.TodoCount)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// overlayWidth returns the outer width of the todo overlay box.
func (m Model) overlayWidth() int {
	return clamp(m.panelWidth()+8, 24, 52)
}

// renderOverlay draws the todo list box, or "" when the overlay is closed.
func (m Model) renderOverlay() string {
	ov, ok := m.machine.Overlay()
	if !ok {
		return ""
	}
	accent := columnColors[ov.Project.Status.Index()]
	inner := m.overlayWidth() - 4
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	itemStyle := lipgloss.NewStyle().Foreground(colorText)
	selectedStyle := lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	lines := []string{titleStyle.Render(fitRow(ov.Project.Name, fmt.Sprintf("%d items", len(ov.Items)), inner))}
	if len(ov.Items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorMuted).Render(fitRow("(no items, a to add)", "", inner)))
	}
	for idx, item := range ov.Items {
		style := itemStyle
		if idx == ov.Selected {
			style = selectedStyle
		}
		lines = append(lines, style.Render(fitRow("• "+item.Description, "", inner)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// overlayOrigin places the overlay box beside its anchored card within the board.
func (m Model) overlayOrigin(anchor board.Position, box string, boardWidth, boardHeight int) (int, int) {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	pw := m.panelWidth()
	x := (anchor.Window + 1) * pw
	if x+w > boardWidth {
		x = anchor.Window*pw - w
	}
	x = clamp(x, 0, max(boardWidth-w, 0))

	col := m.machine.Column(anchor.Window)
	start := scrollStart(col.Len(), anchor.Card, m.cardArea())
	// panel border plus title row
	y := 2 + (anchor.Card-start)*cardRows
	y = clamp(y, 0, max(boardHeight-h, 0))
	return x, y
}

// composeAt layers overlay over base at x, y.
func composeAt(base, overlay string, x, y, width, height int) string {
	canvas := lipgloss.NewCanvas(width, height)
	canvas.Compose(lipgloss.NewLayer(fitLines(base, height)).X(0).Y(0).Z(0))
	canvas.Compose(lipgloss.NewLayer(overlay).X(x).Y(y).Z(10))
	return canvas.Render()
}

// overlayOnContent overlays on content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}
	centered := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
	return composeAt(base, centered, 0, 0, width, height)
}

// fitRow lays left and right text into exactly width cells.
func fitRow(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	room := width
	if right != "" {
		right = runewidth.Truncate(right, max(width/2, 1), "…")
		room = width - runewidth.StringWidth(right) - 1
	}
	left = runewidth.Truncate(left, max(room, 0), "…")
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	return left + strings.Repeat(" ", max(gap, 0)) + right
}

// centerRow centers s in exactly width cells.
func centerRow(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	pad := width - runewidth.StringWidth(s)
	return strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2)
}

// padBlock right-pads every line to width cells.
func padBlock(content string, width int) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + strings.Repeat(" ", gap)
		}
	}
	return strings.Join(lines, "\n")
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	return min(max(v, minV), maxV)
}
