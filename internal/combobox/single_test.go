package combobox_test

import (
	"testing"

	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frameworks = []combobox.Option{
	{ID: "nextjs", Label: "Next.js"},
	{ID: "remix", Label: "Remix"},
	{ID: "astro", Label: "Astro"},
}

type singleCall struct {
	id  string
	opt *combobox.Option
}

func newSingle(t *testing.T, p combobox.SingleProps) (*combobox.Single, *[]singleCall) {
	t.Helper()
	var calls []singleCall
	p.OnValueChange = func(id string, opt *combobox.Option) {
		calls = append(calls, singleCall{id: id, opt: opt})
	}
	return combobox.NewSingle(p), &calls
}

func TestSingle_SelectUncontrolled(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{Props: combobox.Props{Data: frameworks}})

	closeDropdown := s.Select("remix")

	assert.True(t, closeDropdown)
	assert.Equal(t, "remix", s.Value())
	require.Len(t, *calls, 1)
	assert.Equal(t, "remix", (*calls)[0].id)
	require.NotNil(t, (*calls)[0].opt)
	assert.Equal(t, "Remix", (*calls)[0].opt.Label)
}

func TestSingle_SelectIsIdempotent(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{Props: combobox.Props{Data: frameworks}})

	s.Select("astro")
	s.Select("astro")

	assert.Equal(t, "astro", s.Value())
	require.Len(t, *calls, 2)
	assert.Equal(t, (*calls)[0], (*calls)[1])
}

func TestSingle_ControlledIgnoresInternalMutation(t *testing.T) {
	value := "nextjs"
	s, calls := newSingle(t, combobox.SingleProps{
		Props: combobox.Props{Data: frameworks},
		Value: &value,
	})

	s.Select("remix")

	// The caller is notified but owns the value.
	assert.Equal(t, "nextjs", s.Value())
	require.Len(t, *calls, 1)
	assert.Equal(t, "remix", (*calls)[0].id)

	s.SetValue("remix")
	assert.Equal(t, "remix", s.Value())
}

func TestSingle_DefaultValue(t *testing.T) {
	s, _ := newSingle(t, combobox.SingleProps{
		Props:        combobox.Props{Data: frameworks},
		DefaultValue: "astro",
	})
	opt, ok := s.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "Astro", opt.Label)
	assert.True(t, s.IsSelected("astro"))
	assert.False(t, s.IsSelected("remix"))
}

func TestSingle_CacheKeepsLabelAfterDataChange(t *testing.T) {
	s, _ := newSingle(t, combobox.SingleProps{Props: combobox.Props{
		Data: []combobox.Option{{ID: "x", Label: "X"}},
	}})

	s.Select("x")
	s.SetData(nil)

	opt, ok := s.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "X", opt.Label)
}

func TestSingle_UnknownIDFallsBackToPlaceholder(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{Props: combobox.Props{Data: frameworks}})

	s.Select("svelte")

	require.Len(t, *calls, 1)
	require.NotNil(t, (*calls)[0].opt)
	assert.Equal(t, combobox.Option{ID: "svelte", Label: "svelte"}, *(*calls)[0].opt)
}

func TestSingle_SelectResetsSearch(t *testing.T) {
	t.Run("internal", func(t *testing.T) {
		s, _ := newSingle(t, combobox.SingleProps{Props: combobox.Props{Data: frameworks}})
		s.Type("rem")
		require.Len(t, s.Filtered(), 1)

		s.Select("remix")

		assert.Empty(t, s.Search().Text())
		assert.Len(t, s.Filtered(), 3)
	})

	t.Run("external", func(t *testing.T) {
		var searches []string
		s, _ := newSingle(t, combobox.SingleProps{Props: combobox.Props{
			Data:     frameworks,
			OnSearch: func(text string) { searches = append(searches, text) },
		}})
		s.Type("rem")

		s.Select("remix")

		assert.Empty(t, s.Search().Text())
		assert.Equal(t, []string{""}, searches)
	})
}

func TestSingle_ClearAll(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{
		Props:        combobox.Props{Data: frameworks, Clearable: true},
		DefaultValue: "nextjs",
	})
	assert.True(t, s.CanClear())

	s.ClearAll()

	assert.Empty(t, s.Value())
	assert.False(t, s.CanClear())
	require.Len(t, *calls, 1)
	assert.Empty(t, (*calls)[0].id)
	assert.Nil(t, (*calls)[0].opt)
}

func TestSingle_Disabled(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{
		Props:        combobox.Props{Data: frameworks, Disabled: true, Clearable: true},
		DefaultValue: "nextjs",
	})

	assert.False(t, s.Select("remix"))
	s.ClearAll()
	_, pending := s.Type("x")

	assert.Equal(t, "nextjs", s.Value())
	assert.Empty(t, *calls)
	assert.False(t, pending)
	assert.False(t, s.CanClear())

	s.SetDisabled(false)
	assert.True(t, s.Select("remix"))
}

func TestSingle_DisabledOptionIsNotPickable(t *testing.T) {
	s, calls := newSingle(t, combobox.SingleProps{Props: combobox.Props{
		Data: []combobox.Option{{ID: "a", Label: "A", Disabled: true}},
	}})

	assert.False(t, s.Select("a"))
	assert.Empty(t, s.Value())
	assert.Empty(t, *calls)
}

func TestSingle_RenderItem(t *testing.T) {
	s, _ := newSingle(t, combobox.SingleProps{Props: combobox.Props{
		Data: frameworks,
		RenderItem: func(opt combobox.Option, selected bool) string {
			if selected {
				return "* " + opt.Label
			}
			return opt.Label
		},
	}})
	assert.Equal(t, "* Remix", s.Render(frameworks[1], true))
	assert.Equal(t, "Remix", s.Render(frameworks[1], false))

	plain, _ := newSingle(t, combobox.SingleProps{})
	assert.Equal(t, "Astro", plain.Render(frameworks[2], true))
}
