package tui

import "github.com/ruminaider/combobox/internal/combobox"

type rowKind int

const (
	rowOption   rowKind = iota
	rowHeader           // group name, not selectable
	rowSentinel         // trailing marker watched for infinite loading
)

type row struct {
	kind  rowKind
	opt   combobox.Option
	title string
}

func (r row) selectable() bool {
	return r.kind == rowOption && !r.opt.Disabled
}

// buildRows flattens grouped options into display rows. Ungrouped options
// come first, each group is introduced by a header, and a sentinel row is
// appended when more data can be loaded.
func buildRows(g combobox.Grouped, sentinel bool) []row {
	rows := make([]row, 0, g.Len()+len(g.Groups)+1)
	for _, o := range g.Ungrouped {
		rows = append(rows, row{kind: rowOption, opt: o})
	}
	for _, grp := range g.Groups {
		rows = append(rows, row{kind: rowHeader, title: grp.Name})
		for _, o := range grp.Options {
			rows = append(rows, row{kind: rowOption, opt: o})
		}
	}
	if sentinel {
		rows = append(rows, row{kind: rowSentinel})
	}
	return rows
}
