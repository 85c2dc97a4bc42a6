package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// PopoverWidth is the fixed width of the dropdown box on wide terminals.
const PopoverWidth = 48

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Trigger styles.
var (
	// TriggerStyle wraps the closed combobox.
	TriggerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Foreground(colorText).
			Padding(0, 1)

	// PlaceholderStyle is used when nothing is selected.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)

	// BadgeStyle is used for selected-item badges.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1)

	// BadgeFocusStyle marks the badge that backspace would dismiss.
	BadgeFocusStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorMauve).
			Bold(true).
			Padding(0, 1)

	// BadgeToggleStyle is used for the "+N more" / "Show less" badge.
	BadgeToggleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface1).
				Padding(0, 1)
)

// Dropdown styles.
var (
	// PopoverStyle is the bordered box used on wide terminals.
	PopoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Padding(0, 1)

	// DrawerStyle is the full-width sheet used on narrow terminals.
	DrawerStyle = lipgloss.NewStyle().
			BorderTop(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1)

	// HeaderStyle is used for group headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle is used for checked items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// DisabledStyle is used for options that cannot be picked.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Strikethrough(true)

	// DimStyle is used for hints and scroll indicators.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// SpinnerStyle colors the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// ErrorStyle is used for data source failures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Help line styles.
var (
	// HelpStyle is the base style for the bottom key hints.
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// HelpKeyStyle highlights keyboard shortcuts.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	// InputPromptStyle colors the search prompt.
	InputPromptStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	// CursorStyle highlights the current row.
	CursorStyle = lipgloss.NewStyle().
			Background(colorSurface0)
)
