package combobox

// LoadState is the caller-owned pagination state.
type LoadState struct {
	Loading bool
	HasMore bool
}

// Watcher observes the sentinel row for one set of dependencies. It fires
// loadMore at most once per arm; the list re-rendering re-arms it. A closed
// watcher never fires, so callbacks captured by an outdated watcher cannot
// run against newer state.
type Watcher struct {
	state    LoadState
	loadMore func()
	armed    bool
	closed   bool
}

// Observing reports whether the sentinel should be rendered and watched.
func (w *Watcher) Observing() bool {
	return w != nil && !w.closed && w.state.HasMore
}

// Visible reports that the sentinel is on screen. It calls loadMore and
// returns true unless the watcher is closed, spent, loading or exhausted.
func (w *Watcher) Visible() bool {
	if !w.Observing() || !w.armed || w.state.Loading || w.loadMore == nil {
		return false
	}
	w.armed = false
	w.loadMore()
	return true
}

// Close tears the watcher down. It is safe to call more than once.
func (w *Watcher) Close() {
	if w != nil {
		w.closed = true
	}
}

func (w *Watcher) rearm() {
	if w != nil && !w.closed {
		w.armed = true
	}
}

// InfiniteScroll owns the current Watcher and replaces it whenever the
// loading dependencies change.
type InfiniteScroll struct {
	current *Watcher
}

// Watch closes the current watcher and arms a new one for state.
func (s *InfiniteScroll) Watch(state LoadState, loadMore func()) *Watcher {
	s.Close()
	s.current = &Watcher{state: state, loadMore: loadMore, armed: true}
	return s.current
}

// Current returns the live watcher, or nil before the first Watch and after
// Close.
func (s *InfiniteScroll) Current() *Watcher {
	return s.current
}

// Rearm lets the live watcher fire again after new options were rendered.
func (s *InfiniteScroll) Rearm() {
	s.current.rearm()
}

// Close tears down the live watcher, as on unmount.
func (s *InfiniteScroll) Close() {
	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
}
