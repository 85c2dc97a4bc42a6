package tui

import (
	"github.com/ruminaider/combobox/internal/catalog"
)

// Layout selects how the open dropdown is drawn.
type Layout int

const (
	LayoutPopover Layout = iota // bordered box on wide terminals
	LayoutDrawer                // full-width sheet on narrow terminals
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutPopover:
		return "popover"
	case LayoutDrawer:
		return "drawer"
	default:
		return "unknown"
	}
}

// LayoutFor picks the drawer below the breakpoint width.
func LayoutFor(width, breakpoint int) Layout {
	if width > 0 && width < breakpoint {
		return LayoutDrawer
	}
	return LayoutPopover
}

// --- Internal messages ---

// debounceMsg is delivered when a search debounce ticket elapses.
type debounceMsg struct{ Tag uint64 }

// pageMsg carries the result of a catalog fetch.
type pageMsg struct {
	Gen    int  // query generation the fetch belongs to
	Append bool // false replaces the list (new query)
	Page   catalog.Page
	Err    error
}

// retryMsg ends the pause after a failed fetch.
type retryMsg struct{ Seq int }

// valueMsg carries a selection change back to a controlled model.
type valueMsg struct{ IDs []string }
