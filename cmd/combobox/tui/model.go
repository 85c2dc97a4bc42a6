package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/combobox/internal/catalog"
	"github.com/ruminaider/combobox/internal/combobox"
	"github.com/ruminaider/combobox/internal/logging"
)

// Options configures a combobox Model.
type Options struct {
	Multi bool

	// Data is the static option list. It is ignored when Source is set.
	Data []combobox.Option
	// Source loads options page by page.
	Source   catalog.Source
	PageSize int
	// External delegates filtering to Source instead of filtering loaded
	// options locally.
	External bool
	Debounce time.Duration
	Matcher  combobox.Matcher

	DefaultValue []string
	// Controlled keeps the selection in the model and feeds every change
	// back through SetValue, the way a controlling caller would.
	Controlled bool

	Clearable         bool
	Disabled          bool
	MaxDisplayedItems int
	DefaultExpanded   bool
	RenderItem        func(opt combobox.Option, selected bool) string

	Placeholder string
	Breakpoint  int
	Height      int // visible option rows
	Logger      *slog.Logger
}

// Result is the selection when the program exits.
type Result struct {
	IDs       []string
	Options   []combobox.Option
	Cancelled bool
}

// Model is a bubbletea model rendering one combobox.
type Model struct {
	s *session

	multi       bool
	placeholder string
	breakpoint  int

	input    textinput.Model
	spinner  spinner.Model
	spinning bool

	rows      []row
	cursor    int // index into rows, -1 when nothing is selectable
	badge     int // focused badge in the trigger, -1 when the search box has focus
	offset    int
	height    int // option rows on screen
	maxHeight int
	width     int

	open      bool
	done      bool
	cancelled bool
}

// NewModel creates a Model. The dropdown starts open.
func NewModel(o Options) Model {
	logger := o.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	s := &session{
		controlled: o.Controlled,
		logger:     logger,
		feed:       feed{source: o.Source, pageSize: o.PageSize},
	}

	data := o.Data
	if o.Source != nil {
		data = nil
		s.load = combobox.LoadState{Loading: true}
	}
	props := combobox.Props{
		Data:         data,
		DebounceTime: o.Debounce,
		Matcher:      o.Matcher,
		Clearable:    o.Clearable,
		Disabled:     o.Disabled,
		Loading:      s.load.Loading,
		HasMore:      s.load.HasMore,
		OnLoadMore:   s.onLoadMore,
		RenderItem:   o.RenderItem,
	}
	if o.External && o.Source != nil {
		props.OnSearch = s.onSearch
	}

	if o.Multi {
		mp := combobox.MultiProps{
			Props:             props,
			DefaultValue:      o.DefaultValue,
			OnValueChange:     s.onMultiChange,
			MaxDisplayedItems: o.MaxDisplayedItems,
			DefaultExpanded:   o.DefaultExpanded,
		}
		if o.Controlled {
			mp.Value = append([]string{}, o.DefaultValue...)
		}
		s.multi = combobox.NewMulti(mp)
		s.ctrl = s.multi
	} else {
		sp := combobox.SingleProps{
			Props:         props,
			OnValueChange: s.onSingleChange,
		}
		if len(o.DefaultValue) > 0 {
			sp.DefaultValue = o.DefaultValue[0]
		}
		if o.Controlled {
			v := sp.DefaultValue
			sp.Value = &v
		}
		s.single = combobox.NewSingle(sp)
		s.ctrl = s.single
	}

	if o.Source != nil {
		s.queue(s.fetch(catalog.Query{Limit: o.PageSize}, false))
	}

	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.PromptStyle = InputPromptStyle
	ti.Placeholder = "Search…"
	ti.CharLimit = 64
	ti.Width = PopoverWidth - 8
	ti.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = SpinnerStyle

	placeholder := o.Placeholder
	if placeholder == "" {
		placeholder = "Select an option…"
	}
	height := o.Height
	if height <= 0 {
		height = 8
	}

	m := Model{
		s:           s,
		multi:       o.Multi,
		placeholder: placeholder,
		breakpoint:  o.Breakpoint,
		input:       ti,
		spinner:     spin,
		badge:       -1,
		height:      height,
		maxHeight:   height,
		open:        true,
	}
	m.rebuild(true)
	return m
}

// Init starts the cursor blink, the first fetch and the spinner.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.s.drain()}
	if m.s.load.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles input, debounce ticks and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	resetCursor := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = m.contentWidth() - 4
		if msg.Height > 0 {
			// Trigger, input, help and borders take roughly 8 lines.
			m.height = max(3, min(m.maxHeight, msg.Height-8))
		}
	case tea.KeyMsg:
		var cmd tea.Cmd
		cmd, resetCursor = m.handleKey(msg)
		cmds = append(cmds, cmd)
	case debounceMsg:
		m.s.ctrl.Search().Fire(msg.Tag)
	case retryMsg:
		m.s.endBackoff(msg.Seq)
	case pageMsg:
		m.s.applyPage(msg)
		resetCursor = !msg.Append && msg.Err == nil
	case valueMsg:
		m.s.applyValue(msg.IDs)
	case spinner.TickMsg:
		if m.s.load.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.spinning = false
		}
	}

	if m.done {
		m.s.ctrl.Close()
		return m, tea.Quit
	}

	m.rebuild(resetCursor)
	m.clampBadge()
	m.checkSentinel()
	m.syncInput()
	if m.s.load.Loading && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	cmds = append(cmds, m.s.drain())
	return m, tea.Batch(cmds...)
}

// handleKey applies one key press. The bool reports that the filter
// changed and the cursor should return to the top.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.cancelled = true
		m.done = true
		return nil, false
	}

	if !m.open {
		switch msg.String() {
		case "esc", "q":
			m.cancelled = true
			m.done = true
		case "enter":
			m.done = true
		case "ctrl+x":
			m.clear()
		default:
			m.setOpen(true)
		}
		return nil, false
	}

	if m.badge >= 0 && m.handleBadgeKey(msg) {
		return nil, false
	}

	switch msg.String() {
	case "esc":
		m.setOpen(false)
	case "left":
		if m.focusLastBadge() {
			return nil, false
		}
		return m.updateInput(msg)
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(+1)
	case "pgup":
		for i := 0; i < m.height; i++ {
			m.moveCursor(-1)
		}
	case "pgdown":
		for i := 0; i < m.height; i++ {
			m.moveCursor(+1)
		}
	case "enter":
		m.pickCurrent()
	case "ctrl+x":
		m.clear()
	case "tab":
		if m.s.multi != nil {
			m.s.multi.ToggleExpanded()
		}
	case "backspace":
		if m.s.multi != nil && m.input.Value() == "" {
			m.s.multi.RemoveLast()
			return nil, false
		}
		return m.updateInput(msg)
	default:
		return m.updateInput(msg)
	}
	return nil, false
}

// focusLastBadge moves focus from an empty search box to the last badge.
func (m *Model) focusLastBadge() bool {
	if m.s.multi == nil || m.s.multi.Disabled() || m.input.Value() != "" {
		return false
	}
	n := len(m.s.multi.Badges().Visible)
	if n == 0 {
		return false
	}
	m.badge = n - 1
	m.input.Blur()
	return true
}

// handleBadgeKey applies a key while a badge has focus. It returns false
// when the key should be handled as if the search box had focus.
func (m *Model) handleBadgeKey(msg tea.KeyMsg) bool {
	visible := m.s.multi.Badges().Visible
	switch msg.String() {
	case "left":
		if m.badge > 0 {
			m.badge--
		}
	case "right":
		m.badge++
		if m.badge >= len(visible) {
			m.unfocusBadge()
		}
	case "backspace", "delete":
		if m.badge < len(visible) {
			m.s.multi.Remove(visible[m.badge].ID)
		}
		m.clampBadge()
	case "esc":
		m.unfocusBadge()
	default:
		m.unfocusBadge()
		return false
	}
	return true
}

func (m *Model) unfocusBadge() {
	m.badge = -1
	if m.open {
		m.input.Focus()
	}
}

// clampBadge keeps badge focus on an existing badge after the selection
// shrank, and drops it when no badge is left.
func (m *Model) clampBadge() {
	if m.badge < 0 {
		return
	}
	if m.s.multi == nil || !m.open {
		m.badge = -1
		return
	}
	n := len(m.s.multi.Badges().Visible)
	switch {
	case n == 0:
		m.unfocusBadge()
	case m.badge >= n:
		m.badge = n - 1
	}
}

// updateInput feeds a key to the search box and the search controller.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Cmd, bool) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	text := m.input.Value()
	if text == before {
		return cmd, false
	}
	if p, ok := m.s.ctrl.Type(text); ok {
		cmd = tea.Batch(cmd, debounceCmd(p))
	}
	return cmd, true
}

func debounceCmd(p combobox.Pending) tea.Cmd {
	if p.Delay <= 0 {
		return func() tea.Msg { return debounceMsg{Tag: p.Tag} }
	}
	return tea.Tick(p.Delay, func(time.Time) tea.Msg { return debounceMsg{Tag: p.Tag} })
}

func (m *Model) pickCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.rows) || !m.rows[m.cursor].selectable() {
		return
	}
	id := m.rows[m.cursor].opt.ID
	if m.s.single != nil {
		if m.s.single.Select(id) {
			m.setOpen(false)
		}
		return
	}
	m.s.multi.Toggle(id)
}

func (m *Model) clear() {
	if m.s.ctrl.CanClear() {
		m.s.ctrl.ClearAll()
	}
}

func (m *Model) setOpen(open bool) {
	m.open = open
	if open {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// syncInput mirrors the controller's search text into the text box, e.g.
// after a selection cleared it.
func (m *Model) syncInput() {
	if text := m.s.ctrl.Search().Text(); text != m.input.Value() {
		m.input.SetValue(text)
	}
}

// rebuild recomputes the rows from the controller. The cursor stays on the
// same option when possible.
func (m *Model) rebuild(resetCursor bool) {
	var currentID string
	if !resetCursor && m.cursor >= 0 && m.cursor < len(m.rows) {
		currentID = m.rows[m.cursor].opt.ID
	}
	m.rows = buildRows(m.s.ctrl.Visible(), m.s.ctrl.Sentinel().Observing())

	m.cursor = -1
	if currentID != "" {
		for i, r := range m.rows {
			if r.selectable() && r.opt.ID == currentID {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor < 0 {
		m.cursor = m.firstSelectable()
		if resetCursor {
			m.offset = 0
		}
	}
	m.clampScroll()
}

// checkSentinel reports sentinel visibility to the watcher while open.
func (m *Model) checkSentinel() {
	if !m.open || m.s.backoff {
		return
	}
	start, end := m.window()
	for i := start; i < end; i++ {
		if m.rows[i].kind == rowSentinel {
			m.s.ctrl.Sentinel().Visible()
			return
		}
	}
}

func (m Model) firstSelectable() int {
	for i, r := range m.rows {
		if r.selectable() {
			return i
		}
	}
	return -1
}

func (m Model) lastSelectable() int {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].selectable() {
			return i
		}
	}
	return -1
}

// moveCursor advances the cursor in the given direction (+1 or -1),
// skipping headers, disabled options and the sentinel.
func (m *Model) moveCursor(dir int) {
	for next := m.cursor + dir; next >= 0 && next < len(m.rows); next += dir {
		if m.rows[next].selectable() {
			m.cursor = next
			break
		}
	}
	m.clampScroll()
}

// clampScroll keeps the cursor inside the window. At either end of the
// list the window also reveals the leading header or the trailing
// sentinel.
func (m *Model) clampScroll() {
	if m.height <= 0 {
		return
	}
	if m.cursor >= 0 {
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+m.height {
			m.offset = m.cursor - m.height + 1
		}
		if m.cursor == m.firstSelectable() && m.cursor < m.height {
			m.offset = 0
		}
		if m.cursor == m.lastSelectable() {
			if last := len(m.rows) - 1; last >= m.offset+m.height && last-m.cursor < m.height {
				m.offset = last - m.height + 1
			}
		}
	}
	maxOffset := max(len(m.rows)-m.height, 0)
	m.offset = max(min(m.offset, maxOffset), 0)
}

// window returns the half-open range of rows on screen.
func (m Model) window() (int, int) {
	return m.offset, min(len(m.rows), m.offset+m.height)
}

// Layout returns the current responsive layout.
func (m Model) Layout() Layout {
	return LayoutFor(m.width, m.breakpoint)
}

// Open reports whether the dropdown is showing.
func (m Model) Open() bool {
	return m.open
}

// Result returns the final selection.
func (m Model) Result() Result {
	r := Result{Cancelled: m.cancelled}
	if m.s.single != nil {
		if opt, ok := m.s.single.SelectedOption(); ok {
			r.IDs = []string{opt.ID}
			r.Options = []combobox.Option{opt}
		}
		return r
	}
	r.Options = m.s.multi.SelectedOptions()
	r.IDs = combobox.IDs(r.Options)
	return r
}

func (m Model) contentWidth() int {
	if m.Layout() == LayoutDrawer {
		return max(m.width-2, 10)
	}
	return PopoverWidth
}

// View renders the trigger, the dropdown when open, and key hints.
func (m Model) View() string {
	parts := []string{m.viewTrigger()}
	if m.open {
		body := m.viewDropdown()
		if m.Layout() == LayoutDrawer {
			parts = append(parts, DrawerStyle.Width(m.contentWidth()).Render(body))
		} else {
			parts = append(parts, PopoverStyle.Width(m.contentWidth()).Render(body))
		}
	}
	parts = append(parts, m.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTrigger() string {
	var content string
	if m.s.single != nil {
		if opt, ok := m.s.single.SelectedOption(); ok {
			content = opt.Label
		}
	} else {
		content = RenderBadges(m.s.multi.Badges(), m.badge)
	}
	if content == "" {
		content = PlaceholderStyle.Render(m.placeholder)
	}
	if m.s.ctrl.CanClear() {
		content += DimStyle.Render("  ✕")
	}
	arrow := "▾"
	if m.open {
		arrow = "▴"
	}
	return TriggerStyle.Width(m.contentWidth()).Render(content + " " + DimStyle.Render(arrow))
}

func (m Model) viewDropdown() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.rows) == 0 {
		switch {
		case m.s.load.Loading:
			b.WriteString(m.spinner.View() + DimStyle.Render(" Loading…"))
		default:
			b.WriteString(DimStyle.Render("No results."))
		}
	}

	start, end := m.window()
	if start > 0 {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}
	textWidth := m.contentWidth() - 8
	for i := start; i < end; i++ {
		r := m.rows[i]
		switch r.kind {
		case rowHeader:
			b.WriteString(RenderHeader(r.title))
		case rowSentinel:
			b.WriteString(RenderSentinel(m.s.load.Loading, m.spinner.View()))
		default:
			selected := m.s.ctrl.IsSelected(r.opt.ID)
			cursor := "  "
			if i == m.cursor {
				cursor = CursorStyle.Render("> ")
			}
			mark := RenderMark(selected)
			if m.multi {
				mark = RenderCheckbox(selected)
			}
			text := RenderItemText(m.s.ctrl.Render(r.opt, selected), textWidth, i == m.cursor, r.opt.Disabled)
			b.WriteString(cursor + mark + " " + text)
		}
		b.WriteString("\n")
	}
	if end < len(m.rows) {
		b.WriteString(DimStyle.Render("  ↓ more") + "\n")
	}
	if m.s.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("! %v", m.s.err)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewHelp() string {
	if !m.open {
		return RenderHelp("enter", "confirm", "any key", "open", "esc", "quit")
	}
	pairs := []string{"↑/↓", "move", "enter", "select", "esc", "close"}
	if m.multi {
		pairs = []string{"↑/↓", "move", "enter", "toggle", "⌫", "remove last", "←/→", "pick badge", "tab", "badges", "esc", "close"}
		if m.badge >= 0 {
			pairs = []string{"←/→", "move", "⌫", "remove", "esc", "back to search"}
		}
	}
	if m.s.ctrl.CanClear() {
		pairs = append(pairs, "ctrl+x", "clear")
	}
	return RenderHelp(pairs...)
}
