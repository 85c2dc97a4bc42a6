package combobox

// SingleProps configures a single-select controller. A non-nil Value makes
// the selection controlled.
type SingleProps struct {
	Props
	Value         *string
	DefaultValue  string
	OnValueChange func(id string, opt *Option)
}

// Single is a single-select controller. The empty id means no selection.
type Single struct {
	base
	value    ValueSource[string]
	onChange func(string, *Option)
}

// NewSingle builds a single-select controller from props.
func NewSingle(p SingleProps) *Single {
	s := &Single{
		base:     newBase(p.Props),
		value:    Uncontrolled(p.DefaultValue),
		onChange: p.OnValueChange,
	}
	if p.Value != nil {
		s.value = Controlled(*p.Value)
	}
	return s
}

// Value returns the selected id, or "".
func (s *Single) Value() string {
	return s.value.Get()
}

// SetValue pushes a new controlled value from the caller.
func (s *Single) SetValue(id string) {
	s.value.Sync(id)
}

// SelectedOption resolves the current selection for display.
func (s *Single) SelectedOption() (Option, bool) {
	id := s.value.Get()
	if id == "" {
		return Option{}, false
	}
	return s.res.resolve(id), true
}

// IsSelected reports whether id is the current selection.
func (s *Single) IsSelected(id string) bool {
	return id != "" && s.value.Get() == id
}

// Select picks id. Re-selecting the current id re-confirms it. The search
// text is cleared and the returned close flag asks the host to close the
// dropdown. Nothing happens while disabled or for a disabled option.
func (s *Single) Select(id string) (close bool) {
	if !s.pickable(id) {
		return false
	}
	opt := s.res.resolve(id)
	s.value.Set(id)
	s.notify(id, &opt)
	s.search.Reset()
	return true
}

// ClearAll empties the selection.
func (s *Single) ClearAll() {
	if s.disabled {
		return
	}
	s.value.Set("")
	s.notify("", nil)
}

// CanClear reports whether the clear affordance should be offered.
func (s *Single) CanClear() bool {
	return s.clearable && !s.disabled && s.value.Get() != ""
}

func (s *Single) notify(id string, opt *Option) {
	if s.onChange != nil {
		s.onChange(id, opt)
	}
}
