// Package combobox implements the state model behind a combobox input:
// single and multi-value selection, internal or debounced external search,
// grouping, infinite loading and badge overflow. It renders nothing; a host
// (see cmd/combobox/tui) drives it and draws the result.
package combobox

// Option is a single choice supplied by the caller. Options are treated as
// immutable values and indexed by ID.
type Option struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Group    string `yaml:"group,omitempty"` // empty means ungrouped
}

// Placeholder synthesizes the minimal option used when an id cannot be
// resolved from live data or the cache.
func Placeholder(id string) Option {
	return Option{ID: id, Label: id}
}

// IDs returns the ids of opts in order.
func IDs(opts []Option) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}

// cache remembers every option that was ever resolved from live data so a
// selection keeps its label after the option scrolls out of the loaded page.
// It is append-only.
type cache map[string]Option

func (c cache) remember(o Option) {
	c[o.ID] = o
}

func (c cache) lookup(id string) (Option, bool) {
	o, ok := c[id]
	return o, ok
}

// resolver looks ids up in the live data first, then the cache, and finally
// falls back to a placeholder.
type resolver struct {
	data  []Option
	cache cache
}

func newResolver(data []Option) *resolver {
	return &resolver{data: data, cache: cache{}}
}

// find scans live data only. A hit is recorded in the cache.
func (r *resolver) find(id string) (Option, bool) {
	for _, o := range r.data {
		if o.ID == id {
			r.cache.remember(o)
			return o, true
		}
	}
	return Option{}, false
}

func (r *resolver) resolve(id string) Option {
	if o, ok := r.find(id); ok {
		return o
	}
	if o, ok := r.cache.lookup(id); ok {
		return o
	}
	return Placeholder(id)
}

func (r *resolver) resolveAll(ids []string) []Option {
	opts := make([]Option, 0, len(ids))
	for _, id := range ids {
		opts = append(opts, r.resolve(id))
	}
	return opts
}

// isDisabled reports whether id is disabled in the live data.
func (r *resolver) isDisabled(id string) bool {
	o, ok := r.find(id)
	return ok && o.Disabled
}
