package combobox

import "time"

// SearchProps configures a Search. A non-nil OnSearch selects external mode
// for the lifetime of the Search.
type SearchProps struct {
	Value        *string // controlled search text, nil when uncontrolled
	OnSearch     func(text string)
	DebounceTime time.Duration
	Matcher      Matcher // internal mode only, defaults to SubstringMatcher
}

// Pending is a debounce ticket. The host waits Delay and hands Tag back to
// Search.Fire. Only the newest ticket can fire.
type Pending struct {
	Tag   uint64
	Text  string
	Delay time.Duration
}

// Search owns the search text and decides who filters.
//
// Internal mode filters locally on every keystroke. External mode forwards
// the text to OnSearch after the debounce delay and leaves the option list
// alone.
type Search struct {
	external  bool
	onSearch  func(string)
	delay     time.Duration
	matcher   Matcher
	text      ValueSource[string]
	confirmed string
	tag       uint64
	pending   bool
}

// NewSearch builds a Search. The mode cannot change afterwards.
func NewSearch(p SearchProps) *Search {
	s := &Search{
		external: p.OnSearch != nil,
		onSearch: p.OnSearch,
		delay:    p.DebounceTime,
		matcher:  p.Matcher,
	}
	if s.matcher == nil {
		s.matcher = SubstringMatcher{}
	}
	if s.delay < 0 {
		s.delay = 0
	}
	switch {
	case p.Value == nil:
		s.text = Uncontrolled("")
	case s.external:
		// External mode always shows keystrokes immediately; the prop only
		// seeds the text and the last confirmed value.
		s.text = Uncontrolled(*p.Value)
		s.confirmed = *p.Value
	default:
		s.text = Controlled(*p.Value)
	}
	return s
}

// External reports whether filtering is delegated to OnSearch.
func (s *Search) External() bool {
	return s.external
}

// Text returns the text to display in the search box.
func (s *Search) Text() string {
	return s.text.Get()
}

// Delay returns the configured debounce delay.
func (s *Search) Delay() time.Duration {
	return s.delay
}

// Type records a keystroke. In external mode it restarts the debounce and
// returns the ticket to schedule; any previous ticket is void.
func (s *Search) Type(text string) (Pending, bool) {
	s.text.Set(text)
	if !s.external {
		return Pending{}, false
	}
	s.tag++
	s.pending = true
	return Pending{Tag: s.tag, Text: text, Delay: s.delay}, true
}

// Fire delivers an elapsed ticket. OnSearch runs only for the newest ticket
// and only when the text differs from the last confirmed value.
func (s *Search) Fire(tag uint64) bool {
	if !s.external || !s.pending || tag != s.tag {
		return false
	}
	s.pending = false
	text := s.text.Get()
	if text == s.confirmed {
		return false
	}
	s.confirmed = text
	s.onSearch(text)
	return true
}

// Reset clears the text and cancels any pending ticket. In external mode the
// handler is told about the empty query right away.
func (s *Search) Reset() {
	s.text.Set("")
	s.tag++
	s.pending = false
	if s.external {
		s.confirmed = ""
		s.onSearch("")
	}
}

// SyncValue mirrors a new controlled search value from the caller.
func (s *Search) SyncValue(v string) {
	if s.external {
		s.text.Set(v)
		s.confirmed = v
		s.tag++
		s.pending = false
		return
	}
	s.text.Sync(v)
}

// Filter returns the options to show. External mode returns opts untouched.
func (s *Search) Filter(opts []Option) []Option {
	if s.external {
		return opts
	}
	return s.matcher.Match(s.text.Get(), opts)
}
