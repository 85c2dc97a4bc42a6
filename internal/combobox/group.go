package combobox

// Group is a named run of options sharing Option.Group.
type Group struct {
	Name    string
	Options []Option
}

// Grouped partitions an option list. Ungrouped options render before any
// group; groups keep the order in which their first option appeared.
type Grouped struct {
	Ungrouped []Option
	Groups    []Group
}

// Partition splits opts by Option.Group, preserving source order inside
// every partition.
func Partition(opts []Option) Grouped {
	var g Grouped
	index := map[string]int{}
	for _, o := range opts {
		if o.Group == "" {
			g.Ungrouped = append(g.Ungrouped, o)
			continue
		}
		i, ok := index[o.Group]
		if !ok {
			i = len(g.Groups)
			index[o.Group] = i
			g.Groups = append(g.Groups, Group{Name: o.Group})
		}
		g.Groups[i].Options = append(g.Groups[i].Options, o)
	}
	return g
}

// Lookup returns the options of the named group.
func (g Grouped) Lookup(name string) ([]Option, bool) {
	for _, grp := range g.Groups {
		if grp.Name == name {
			return grp.Options, true
		}
	}
	return nil, false
}

// Len returns the number of options across all partitions.
func (g Grouped) Len() int {
	n := len(g.Ungrouped)
	for _, grp := range g.Groups {
		n += len(grp.Options)
	}
	return n
}

// Flatten returns the options in render order.
func (g Grouped) Flatten() []Option {
	out := make([]Option, 0, g.Len())
	out = append(out, g.Ungrouped...)
	for _, grp := range g.Groups {
		out = append(out, grp.Options...)
	}
	return out
}
