package combobox

import "fmt"

// DefaultMaxDisplayedItems is the badge limit used when none is configured.
const DefaultMaxDisplayedItems = 3

// BadgeView is what a multi-select host draws in its trigger.
type BadgeView struct {
	Visible []Option
	Hidden  int    // selected options collapsed behind the toggle
	Toggle  string // "+N more", "Show less", or empty when everything fits
}

// Badges decides which selected options get a badge. When more than limit are
// selected, the rest collapse behind a "+N more" toggle unless expanded.
func Badges(selected []Option, limit int, expanded bool) BadgeView {
	if limit <= 0 {
		limit = DefaultMaxDisplayedItems
	}
	if len(selected) <= limit {
		return BadgeView{Visible: selected}
	}
	if expanded {
		return BadgeView{Visible: selected, Toggle: "Show less"}
	}
	hidden := len(selected) - limit
	return BadgeView{
		Visible: selected[:limit],
		Hidden:  hidden,
		Toggle:  fmt.Sprintf("+%d more", hidden),
	}
}

// Expander is the badge expansion flag.
type Expander struct {
	expanded bool
}

// NewExpander seeds the flag from the defaultExpanded setting.
func NewExpander(defaultExpanded bool) Expander {
	return Expander{expanded: defaultExpanded}
}

// Expanded reports the current state.
func (e Expander) Expanded() bool {
	return e.expanded
}

// Toggle flips the state.
func (e *Expander) Toggle() {
	e.expanded = !e.expanded
}
