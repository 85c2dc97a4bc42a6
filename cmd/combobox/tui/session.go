package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/combobox/internal/catalog"
	"github.com/ruminaider/combobox/internal/combobox"
)

const (
	// fetchTimeout bounds a single catalog request.
	fetchTimeout = 10 * time.Second
	// retryDelay is how long the sentinel is ignored after a failed fetch.
	retryDelay = 2 * time.Second
)

// controller is the part of the combobox API shared by single and
// multi-select controllers.
type controller interface {
	Data() []combobox.Option
	SetData([]combobox.Option)
	Type(string) (combobox.Pending, bool)
	Visible() combobox.Grouped
	Search() *combobox.Search
	Sentinel() *combobox.Watcher
	SetLoadState(combobox.LoadState)
	LoadState() combobox.LoadState
	Render(combobox.Option, bool) string
	IsSelected(string) bool
	CanClear() bool
	ClearAll()
	Close()
}

// feed tracks paginated loading from a catalog source.
type feed struct {
	source   catalog.Source
	pageSize int
	query    string
	gen      int // bumped for every new query; older pages are dropped
	cursor   string
	data     []combobox.Option
}

// session is the mutable state shared by every copy of a Model. The
// controller callbacks are bound to it, so they always see current state
// and queue their side effects as commands for the next Update to return.
type session struct {
	ctrl       controller
	single     *combobox.Single
	multi      *combobox.Multi
	controlled bool
	feed       feed
	load       combobox.LoadState
	err        error
	backoff    bool // a fetch failed; load-more waits for retryMsg
	retrySeq   int
	cmds       []tea.Cmd
	logger     *slog.Logger
}

func (s *session) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.cmds = append(s.cmds, cmd)
	}
}

// drain returns every queued command as one batch.
func (s *session) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmd := tea.Batch(s.cmds...)
	s.cmds = nil
	return cmd
}

func (s *session) setLoad(state combobox.LoadState) {
	s.load = state
	if s.ctrl != nil {
		s.ctrl.SetLoadState(state)
	}
}

// onSearch starts a fresh external query from the first page.
func (s *session) onSearch(text string) {
	s.logger.Debug("search", "text", text)
	s.feed.query = text
	s.feed.gen++
	s.backoff = false
	s.feed.cursor = ""
	s.setLoad(combobox.LoadState{Loading: true, HasMore: s.load.HasMore})
	s.queue(s.fetch(catalog.Query{Text: text, Limit: s.feed.pageSize}, false))
}

// onLoadMore requests the page after the current cursor.
func (s *session) onLoadMore() {
	if s.load.Loading {
		return
	}
	s.logger.Debug("load more", "cursor", s.feed.cursor, "query", s.feed.query)
	s.setLoad(combobox.LoadState{Loading: true, HasMore: s.load.HasMore})
	s.queue(s.fetch(catalog.Query{Text: s.feed.query, Cursor: s.feed.cursor, Limit: s.feed.pageSize}, true))
}

func (s *session) fetch(q catalog.Query, appendPage bool) tea.Cmd {
	src, gen := s.feed.source, s.feed.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		page, err := src.Fetch(ctx, q)
		return pageMsg{Gen: gen, Append: appendPage, Page: page, Err: err}
	}
}

// applyPage folds a fetch result into the controller. Results of a
// superseded query are discarded.
func (s *session) applyPage(msg pageMsg) {
	if msg.Gen != s.feed.gen {
		s.logger.Debug("dropping stale page", "gen", msg.Gen, "current", s.feed.gen)
		return
	}
	if msg.Err != nil {
		// hasMore stays as it was so the sentinel retries once the pause
		// is over.
		s.logger.Warn("fetch failed", "query", s.feed.query, "cursor", s.feed.cursor, "err", msg.Err, "retry_in", retryDelay)
		s.err = msg.Err
		s.backoff = true
		s.retrySeq++
		seq := s.retrySeq
		s.setLoad(combobox.LoadState{HasMore: s.load.HasMore})
		s.queue(tea.Tick(retryDelay, func(time.Time) tea.Msg { return retryMsg{Seq: seq} }))
		return
	}
	s.err = nil
	s.backoff = false
	if msg.Append {
		s.feed.data = append(s.feed.data, msg.Page.Options...)
	} else {
		s.feed.data = msg.Page.Options
	}
	s.feed.cursor = msg.Page.NextCursor
	s.logger.Debug("page loaded", "count", len(msg.Page.Options), "total", len(s.feed.data), "more", msg.Page.HasMore)
	s.ctrl.SetData(s.feed.data)
	s.setLoad(combobox.LoadState{HasMore: msg.Page.HasMore})
}

// endBackoff lets the sentinel trigger loads again. Ticks from earlier
// failures are ignored.
func (s *session) endBackoff(seq int) {
	if seq == s.retrySeq {
		s.backoff = false
	}
}

func (s *session) onSingleChange(id string, opt *combobox.Option) {
	if opt != nil {
		s.logger.Info("value changed", "id", id, "label", opt.Label)
	} else {
		s.logger.Info("value cleared")
	}
	if s.controlled {
		var ids []string
		if id != "" {
			ids = []string{id}
		}
		s.queue(func() tea.Msg { return valueMsg{IDs: ids} })
	}
}

func (s *session) onMultiChange(ids []string, opts []combobox.Option) {
	s.logger.Info("values changed", "ids", ids, "count", len(opts))
	if s.controlled {
		s.queue(func() tea.Msg { return valueMsg{IDs: ids} })
	}
}

// applyValue is the controlled-mode caller writing the new value back.
func (s *session) applyValue(ids []string) {
	switch {
	case s.single != nil && len(ids) > 0:
		s.single.SetValue(ids[0])
	case s.single != nil:
		s.single.SetValue("")
	case s.multi != nil:
		s.multi.SetValue(append([]string{}, ids...))
	}
}
