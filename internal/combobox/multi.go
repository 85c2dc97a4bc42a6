package combobox

import "slices"

// MultiProps configures a multi-select controller. A non-nil Value makes the
// selection controlled; use an empty, non-nil slice for "controlled, nothing
// selected".
type MultiProps struct {
	Props
	Value             []string
	DefaultValue      []string
	OnValueChange     func(ids []string, opts []Option)
	MaxDisplayedItems int
	DefaultExpanded   bool
}

// Multi is a multi-select controller. Selected ids keep their insertion
// order.
type Multi struct {
	base
	value     ValueSource[[]string]
	onChange  func([]string, []Option)
	maxBadges int
	expander  Expander
}

// NewMulti builds a multi-select controller from props.
func NewMulti(p MultiProps) *Multi {
	m := &Multi{
		base:      newBase(p.Props),
		value:     Uncontrolled(dedupe(p.DefaultValue)),
		onChange:  p.OnValueChange,
		maxBadges: p.MaxDisplayedItems,
		expander:  NewExpander(p.DefaultExpanded),
	}
	if p.Value != nil {
		m.value = Controlled(dedupe(p.Value))
	}
	return m
}

// Values returns a copy of the selected ids in selection order.
func (m *Multi) Values() []string {
	return slices.Clone(m.value.Get())
}

// SetValue pushes a new controlled value from the caller.
func (m *Multi) SetValue(ids []string) {
	m.value.Sync(dedupe(ids))
}

// IsSelected reports whether id is selected.
func (m *Multi) IsSelected(id string) bool {
	return slices.Contains(m.value.Get(), id)
}

// SelectedOptions resolves the selection for display.
func (m *Multi) SelectedOptions() []Option {
	return m.res.resolveAll(m.value.Get())
}

// Toggle removes id when selected and appends it otherwise. The dropdown
// stays open.
func (m *Multi) Toggle(id string) {
	if !m.pickable(id) {
		return
	}
	cur := m.value.Get()
	var next []string
	if i := slices.Index(cur, id); i >= 0 {
		next = slices.Delete(slices.Clone(cur), i, i+1)
	} else {
		next = append(slices.Clone(cur), id)
	}
	m.commit(next)
}

// Remove drops id from the selection, as when its badge is dismissed. It is
// a no-op when id is not selected.
func (m *Multi) Remove(id string) {
	if m.disabled {
		return
	}
	cur := m.value.Get()
	i := slices.Index(cur, id)
	if i < 0 {
		return
	}
	m.commit(slices.Delete(slices.Clone(cur), i, i+1))
}

// RemoveLast drops the most recently selected id, as backspace in an empty
// search box does.
func (m *Multi) RemoveLast() {
	cur := m.value.Get()
	if len(cur) == 0 {
		return
	}
	m.Remove(cur[len(cur)-1])
}

// ClearAll empties the selection.
func (m *Multi) ClearAll() {
	if m.disabled {
		return
	}
	m.commit([]string{})
}

// CanClear reports whether the clear affordance should be offered.
func (m *Multi) CanClear() bool {
	return m.clearable && !m.disabled && len(m.value.Get()) > 0
}

// Badges returns the badge layout for the current selection.
func (m *Multi) Badges() BadgeView {
	return Badges(m.SelectedOptions(), m.maxBadges, m.expander.Expanded())
}

// Expanded reports whether every badge is shown.
func (m *Multi) Expanded() bool {
	return m.expander.Expanded()
}

// ToggleExpanded flips the badge expansion. It is a no-op while disabled.
func (m *Multi) ToggleExpanded() {
	if m.disabled {
		return
	}
	m.expander.Toggle()
}

// commit applies next when uncontrolled and always notifies the caller.
func (m *Multi) commit(next []string) {
	opts := m.res.resolveAll(next)
	m.value.Set(next)
	if m.onChange != nil {
		m.onChange(slices.Clone(next), opts)
	}
}

func dedupe(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
