package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/combobox/internal/combobox"
)

// RenderCheckbox returns a styled [x] or [ ] checkbox.
func RenderCheckbox(selected bool) string {
	if selected {
		return SelectedStyle.Render("[x]")
	}
	return UnselectedStyle.Render("[ ]")
}

// RenderMark returns the single-select marker.
func RenderMark(selected bool) string {
	if selected {
		return SelectedStyle.Render("✓")
	}
	return " "
}

// RenderItemText returns styled display text for an option, truncated to
// width cells.
func RenderItemText(text string, width int, isCurrent, disabled bool) string {
	if width > 0 {
		text = ansi.Truncate(text, width, "…")
	}
	switch {
	case disabled:
		return DisabledStyle.Render(text)
	case isCurrent:
		return lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(text)
	default:
		return text
	}
}

// RenderHeader returns a styled group header line.
func RenderHeader(title string) string {
	return HeaderStyle.Render("── " + title + " ──")
}

// RenderSentinel returns the trailing row shown while more data exists.
func RenderSentinel(loading bool, spin string) string {
	if loading {
		return spin + DimStyle.Render(" Loading more…")
	}
	return DimStyle.Render("  ↓ scroll for more")
}

// RenderBadges lays out the multi-select trigger: one badge per visible
// option, then the overflow toggle. The badge at index focused is
// highlighted; pass -1 for none.
func RenderBadges(view combobox.BadgeView, focused int) string {
	if len(view.Visible) == 0 {
		return ""
	}
	parts := make([]string, 0, len(view.Visible)+1)
	for i, o := range view.Visible {
		style := BadgeStyle
		if i == focused {
			style = BadgeFocusStyle
		}
		parts = append(parts, style.Render(o.Label+" ×"))
	}
	if view.Toggle != "" {
		parts = append(parts, BadgeToggleStyle.Render(view.Toggle))
	}
	return strings.Join(parts, " ")
}

// RenderHelp renders key hints as "key: action" pairs.
func RenderHelp(pairs ...string) string {
	var hints []string
	for i := 0; i+1 < len(pairs); i += 2 {
		hints = append(hints, HelpKeyStyle.Render(pairs[i])+": "+pairs[i+1])
	}
	return HelpStyle.Render(strings.Join(hints, " · "))
}
