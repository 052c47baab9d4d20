package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Panel  lipgloss.Style
	Tree   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Output: lipgloss.NewStyle().Foreground(t.Success),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Hint:   lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Tree: lipgloss.NewStyle().Foreground(t.Text),
	}
}

// KeyHints renders "key action" pairs on one line.
func (s Styles) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Value.Render(pairs[i]))
		b.WriteString(s.Label.Render(" " + pairs[i+1]))
	}
	return b.String()
}

// Separator draws a muted rule of the given width.
func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Label.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Label.Render(left + " ◆ " + right)
}
