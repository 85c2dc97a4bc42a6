package combobox

import "time"

// Props is the configuration shared by single and multi-select controllers.
type Props struct {
	Data []Option

	SearchValue  *string
	OnSearch     func(text string)
	DebounceTime time.Duration
	Matcher      Matcher

	Clearable bool
	Disabled  bool

	Loading    bool
	HasMore    bool
	OnLoadMore func()

	// RenderItem overrides the text drawn for an option. It has no effect on
	// state.
	RenderItem func(opt Option, selected bool) string
}

// DefaultRenderItem draws the option label.
func DefaultRenderItem(opt Option, _ bool) string {
	return opt.Label
}

// base holds the state every controller shares. Operations always read the
// fields through the controller, never through copies captured earlier.
type base struct {
	res        *resolver
	search     *Search
	scroll     InfiniteScroll
	load       LoadState
	onLoadMore func()
	clearable  bool
	disabled   bool
	render     func(Option, bool) string
}

func newBase(p Props) base {
	b := base{
		res: newResolver(p.Data),
		search: NewSearch(SearchProps{
			Value:        p.SearchValue,
			OnSearch:     p.OnSearch,
			DebounceTime: p.DebounceTime,
			Matcher:      p.Matcher,
		}),
		load:       LoadState{Loading: p.Loading, HasMore: p.HasMore},
		onLoadMore: p.OnLoadMore,
		clearable:  p.Clearable,
		disabled:   p.Disabled,
		render:     p.RenderItem,
	}
	if b.render == nil {
		b.render = DefaultRenderItem
	}
	b.scroll.Watch(b.load, b.onLoadMore)
	return b
}

// Data returns the live option list.
func (b *base) Data() []Option {
	return b.res.data
}

// SetData replaces the live option list and re-arms the sentinel watcher.
func (b *base) SetData(data []Option) {
	b.res.data = data
	b.scroll.Rearm()
}

// Search returns the search controller.
func (b *base) Search() *Search {
	return b.search
}

// Type forwards a keystroke to the search controller unless disabled.
func (b *base) Type(text string) (Pending, bool) {
	if b.disabled {
		return Pending{}, false
	}
	return b.search.Type(text)
}

// Filtered returns the options to display in source or match order.
func (b *base) Filtered() []Option {
	return b.search.Filter(b.res.data)
}

// Visible returns the filtered options partitioned by group.
func (b *base) Visible() Grouped {
	return Partition(b.Filtered())
}

// SetLoadState updates the pagination props. Any change replaces the
// sentinel watcher.
func (b *base) SetLoadState(state LoadState) {
	if state == b.load {
		return
	}
	b.load = state
	b.scroll.Watch(b.load, b.onLoadMore)
}

// SetOnLoadMore installs a new loadMore callback and replaces the watcher.
func (b *base) SetOnLoadMore(fn func()) {
	b.onLoadMore = fn
	b.scroll.Watch(b.load, b.onLoadMore)
}

// LoadState returns the pagination props.
func (b *base) LoadState() LoadState {
	return b.load
}

// Sentinel returns the live sentinel watcher.
func (b *base) Sentinel() *Watcher {
	return b.scroll.Current()
}

// Close releases the sentinel watcher, as on unmount.
func (b *base) Close() {
	b.scroll.Close()
}

// SetDisabled toggles the disabled prop.
func (b *base) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Disabled reports the disabled prop.
func (b *base) Disabled() bool {
	return b.disabled
}

// Clearable reports the clearable prop.
func (b *base) Clearable() bool {
	return b.clearable
}

// Render draws opt through the RenderItem override.
func (b *base) Render(opt Option, selected bool) string {
	return b.render(opt, selected)
}

// Resolve returns the option for id from live data, the cache, or a
// placeholder, in that order.
func (b *base) Resolve(id string) Option {
	return b.res.resolve(id)
}

// pickable reports whether a user may pick id right now.
func (b *base) pickable(id string) bool {
	return !b.disabled && !b.res.isDisabled(id)
}
