package dashboard

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/tui/components"
)

// Screen is the dashboard's browse.ViewPort. The controller writes to it and
// Model.View reads from it. It is shared by pointer because Bubble Tea copies
// the model on every update.
type Screen struct {
	list      components.BookList
	remaining int
	empty     bool
	detail    *catalog.Detail
	theme     browse.Theme
}

// NewScreen returns an empty screen on the day theme.
func NewScreen() *Screen {
	return &Screen{theme: browse.ThemeDay}
}

// RenderPage implements browse.ViewPort.
func (s *Screen) RenderPage(items []catalog.Preview) {
	s.list = components.NewBookList(items)
}

// AppendPage implements browse.ViewPort.
func (s *Screen) AppendPage(items []catalog.Preview) {
	s.list = s.list.Append(items)
}

// ShowRemainingCount implements browse.ViewPort.
func (s *Screen) ShowRemainingCount(n int) {
	s.remaining = n
}

// ShowDetail implements browse.ViewPort.
func (s *Screen) ShowDetail(detail catalog.Detail) {
	s.detail = &detail
}

// ShowEmptyState implements browse.ViewPort.
func (s *Screen) ShowEmptyState(empty bool) {
	s.empty = empty
}

// ApplyTheme implements browse.ViewPort.
func (s *Screen) ApplyTheme(theme browse.Theme) {
	s.theme = theme
}

// Items returns the previews currently on screen.
func (s *Screen) Items() []catalog.Preview {
	return s.list.Entries()
}

// Remaining is the last count the controller reported.
func (s *Screen) Remaining() int {
	return s.remaining
}

// Empty reports whether the empty-state message is showing.
func (s *Screen) Empty() bool {
	return s.empty
}

// Detail returns the book in the detail overlay, if any.
func (s *Screen) Detail() (catalog.Detail, bool) {
	if s.detail == nil {
		return catalog.Detail{}, false
	}
	return *s.detail, true
}

// Theme is the applied theme.
func (s *Screen) Theme() browse.Theme {
	return s.theme
}

func (s *Screen) closeDetail() {
	s.detail = nil
}

var _ browse.ViewPort = (*Screen)(nil)
