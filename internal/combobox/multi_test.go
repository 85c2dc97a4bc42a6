package combobox_test

import (
	"testing"

	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type multiCall struct {
	ids  []string
	opts []combobox.Option
}

func newMulti(t *testing.T, p combobox.MultiProps) (*combobox.Multi, *[]multiCall) {
	t.Helper()
	var calls []multiCall
	p.OnValueChange = func(ids []string, opts []combobox.Option) {
		calls = append(calls, multiCall{ids: ids, opts: opts})
	}
	return combobox.NewMulti(p), &calls
}

func TestMulti_EndToEnd(t *testing.T) {
	m, calls := newMulti(t, combobox.MultiProps{
		Props:        combobox.Props{Data: frameworks, Clearable: true},
		DefaultValue: []string{"nextjs"},
	})

	m.Toggle("remix")

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"nextjs", "remix"}, (*calls)[0].ids)
	assert.Equal(t, []combobox.Option{frameworks[0], frameworks[1]}, (*calls)[0].opts)

	m.ClearAll()

	require.Len(t, *calls, 2)
	assert.Empty(t, (*calls)[1].ids)
	assert.Empty(t, (*calls)[1].opts)
	assert.Empty(t, m.Values())
}

func TestMulti_OrderPreservation(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{})

	m.Toggle("a")
	m.Toggle("b")
	m.Toggle("c")
	assert.Equal(t, []string{"a", "b", "c"}, m.Values())

	m.Remove("b")
	assert.Equal(t, []string{"a", "c"}, m.Values())

	m.Toggle("b")
	assert.Equal(t, []string{"a", "c", "b"}, m.Values())
}

func TestMulti_ToggleDeselects(t *testing.T) {
	m, calls := newMulti(t, combobox.MultiProps{
		Props:        combobox.Props{Data: frameworks},
		DefaultValue: []string{"nextjs", "remix"},
	})

	m.Toggle("nextjs")

	assert.Equal(t, []string{"remix"}, m.Values())
	require.Len(t, *calls, 1)
	assert.Equal(t, []combobox.Option{frameworks[1]}, (*calls)[0].opts)
}

func TestMulti_RemoveAbsentIsNoop(t *testing.T) {
	m, calls := newMulti(t, combobox.MultiProps{DefaultValue: []string{"a"}})

	m.Remove("zzz")

	assert.Equal(t, []string{"a"}, m.Values())
	assert.Empty(t, *calls)
}

func TestMulti_RemoveLast(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{DefaultValue: []string{"a", "b"}})

	m.RemoveLast()
	assert.Equal(t, []string{"a"}, m.Values())
	m.RemoveLast()
	m.RemoveLast()
	assert.Empty(t, m.Values())
}

func TestMulti_Controlled(t *testing.T) {
	m, calls := newMulti(t, combobox.MultiProps{
		Props: combobox.Props{Data: frameworks},
		Value: []string{"astro"},
	})

	m.Toggle("remix")

	assert.Equal(t, []string{"astro"}, m.Values())
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"astro", "remix"}, (*calls)[0].ids)

	m.SetValue((*calls)[0].ids)
	assert.Equal(t, []string{"astro", "remix"}, m.Values())
}

func TestMulti_ControlledEmpty(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{Value: []string{}})

	m.Toggle("a")

	assert.Empty(t, m.Values())
}

func TestMulti_DoesNotCloseOrResetSearch(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{Props: combobox.Props{Data: frameworks}})
	m.Type("re")

	m.Toggle("remix")

	assert.Equal(t, "re", m.Search().Text())
	assert.True(t, m.IsSelected("remix"))
}

func TestMulti_DefaultValueDeduped(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{DefaultValue: []string{"a", "b", "a"}})
	assert.Equal(t, []string{"a", "b"}, m.Values())
}

func TestMulti_CacheFallback(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{Props: combobox.Props{Data: frameworks}})
	m.Toggle("remix")
	m.Toggle("ghost")

	m.SetData([]combobox.Option{{ID: "svelte", Label: "Svelte"}})

	opts := m.SelectedOptions()
	require.Len(t, opts, 2)
	assert.Equal(t, "Remix", opts[0].Label)
	assert.Equal(t, "ghost", opts[1].Label)
}

func TestMulti_ValuesReturnsCopy(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{DefaultValue: []string{"a"}})
	vals := m.Values()
	vals[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Values())
}

func TestMulti_Badges(t *testing.T) {
	data := []combobox.Option{
		{ID: "1", Label: "One"}, {ID: "2", Label: "Two"}, {ID: "3", Label: "Three"},
		{ID: "4", Label: "Four"}, {ID: "5", Label: "Five"}, {ID: "6", Label: "Six"},
	}
	m, _ := newMulti(t, combobox.MultiProps{
		Props:             combobox.Props{Data: data},
		DefaultValue:      combobox.IDs(data),
		MaxDisplayedItems: 3,
	})

	view := m.Badges()
	assert.Len(t, view.Visible, 3)
	assert.Equal(t, 3, view.Hidden)
	assert.Equal(t, "+3 more", view.Toggle)

	m.ToggleExpanded()
	assert.True(t, m.Expanded())

	view = m.Badges()
	assert.Len(t, view.Visible, 6)
	assert.Equal(t, "Show less", view.Toggle)
}

func TestMulti_DisabledAllowsNothing(t *testing.T) {
	m, calls := newMulti(t, combobox.MultiProps{
		Props:        combobox.Props{Data: frameworks, Disabled: true, Clearable: true},
		DefaultValue: []string{"nextjs"},
	})

	m.Toggle("remix")
	m.Remove("nextjs")
	m.ClearAll()

	assert.Equal(t, []string{"nextjs"}, m.Values())
	assert.Empty(t, *calls)
	assert.False(t, m.CanClear())
}

func TestMulti_DisabledKeepsBadgeExpansion(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{
		Props:             combobox.Props{Data: frameworks, Disabled: true},
		DefaultValue:      []string{"nextjs", "remix", "astro", "nuxt"},
		MaxDisplayedItems: 2,
	})

	m.ToggleExpanded()

	assert.False(t, m.Expanded())
	assert.Equal(t, "+2 more", m.Badges().Toggle)

	m.SetDisabled(false)
	m.ToggleExpanded()
	assert.True(t, m.Expanded())
}

func TestMulti_DisabledOptionCanStillBeRemoved(t *testing.T) {
	m, _ := newMulti(t, combobox.MultiProps{
		Props:        combobox.Props{Data: []combobox.Option{{ID: "a", Label: "A", Disabled: true}}},
		DefaultValue: []string{"a"},
	})

	m.Toggle("a")
	assert.Equal(t, []string{"a"}, m.Values())

	m.Remove("a")
	assert.Empty(t, m.Values())
}
