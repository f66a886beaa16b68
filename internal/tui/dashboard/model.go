package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

const titleLimit = 200

// Model is the main dashboard model
type Model struct {
	// Core data
	browser Browser
	screen  *Screen
	log     *logger.Logger

	// UI state
	viewMode     ViewMode
	cursor       int
	scrollOffset int

	// Component state
	keys     keyMap
	formKeys formKeyMap
	help     help.Model
	search   searchForm
	settings browse.Theme

	// Status line
	statusMsg     string
	statusIsError bool
	statusSeq     int

	// Dimensions
	width  int
	height int

	useUnicode bool
}

// Option customises a Model.
type Option func(*Model)

// WithLogger routes dashboard events to log.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithUnicode toggles unicode glyphs in the list.
func WithUnicode(enabled bool) Option {
	return func(m *Model) {
		m.useUnicode = enabled
	}
}

// NewModel creates a dashboard over browser. screen must be the ViewPort the
// browser renders into, and the browser should already be started.
func NewModel(browser Browser, screen *Screen, opts ...Option) Model {
	m := Model{
		browser:    browser,
		screen:     screen,
		log:        logger.Nop(),
		viewMode:   ViewList,
		keys:       defaultKeyMap(),
		formKeys:   defaultFormKeyMap(),
		help:       help.New(),
		search:     newSearchForm(browser.AuthorOptions(), browser.GenreOptions()),
		settings:   browser.Theme(),
		width:      80,
		height:     24,
		useUnicode: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// ViewMode returns the active screen.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Cursor returns the index of the highlighted book.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.statusMsg, m.statusIsError
}

// SelectedPreview returns the highlighted book, if any.
func (m Model) SelectedPreview() (catalog.Preview, bool) {
	return m.screen.list.At(m.cursor)
}

// listHeight is the number of rows available to book entries.
func (m Model) listHeight() int {
	// header, summary, button and footer take roughly ten lines
	return max(m.height-10, 3)
}

// clampCursor keeps the cursor on an existing entry and inside the scroll
// window.
func (m *Model) clampCursor() {
	n := m.screen.list.Len()
	if n == 0 {
		m.cursor = 0
		m.scrollOffset = 0
		return
	}
	m.cursor = max(0, min(m.cursor, n-1))

	height := m.listHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+height {
		m.scrollOffset = m.cursor - height + 1
	}
}

// searchField identifies the focused control in the search overlay.
type searchField int

const (
	fieldTitle searchField = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// searchForm is the title input plus the author and genre pickers.
type searchForm struct {
	title     textinput.Model
	authors   []catalog.Entry
	genres    []catalog.Entry
	authorIdx int
	genreIdx  int
	focus     searchField
}

func newSearchForm(authors, genres []catalog.Entry) searchForm {
	input := textinput.New()
	input.Placeholder = "Any title"
	input.Prompt = ""
	input.CharLimit = titleLimit
	input.Width = 40

	return searchForm{
		title:   input,
		authors: authors,
		genres:  genres,
	}
}

// load positions every control on criteria.
func (f searchForm) load(criteria browse.Criteria) searchForm {
	f.title.SetValue(criteria.Title)
	f.authorIdx = indexOfEntry(f.authors, criteria.Author)
	f.genreIdx = indexOfEntry(f.genres, criteria.Genre)
	f.focus = fieldTitle
	f.title.Focus()
	return f
}

// criteria reads the form back into criteria.
func (f searchForm) criteria() browse.Criteria {
	return browse.Criteria{
		Title:  f.title.Value(),
		Author: entryID(f.authors, f.authorIdx),
		Genre:  entryID(f.genres, f.genreIdx),
	}
}

func (f searchForm) moveFocus(delta int) searchForm {
	f.focus = searchField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	if f.focus == fieldTitle {
		f.title.Focus()
	} else {
		f.title.Blur()
	}
	return f
}

func (f searchForm) cycle(delta int) searchForm {
	switch f.focus {
	case fieldAuthor:
		f.authorIdx = wrap(f.authorIdx+delta, len(f.authors))
	case fieldGenre:
		f.genreIdx = wrap(f.genreIdx+delta, len(f.genres))
	}
	return f
}

func (f searchForm) authorLabel() string {
	return entryName(f.authors, f.authorIdx)
}

func (f searchForm) genreLabel() string {
	return entryName(f.genres, f.genreIdx)
}

func indexOfEntry(entries []catalog.Entry, id string) int {
	idx := slices.IndexFunc(entries, func(e catalog.Entry) bool { return e.ID == id })
	return max(idx, 0)
}

func entryID(entries []catalog.Entry, idx int) string {
	if idx < 0 || idx >= len(entries) {
		return browse.Any
	}
	return entries[idx].ID
}

func entryName(entries []catalog.Entry, idx int) string {
	if idx < 0 || idx >= len(entries) {
		return ""
	}
	return entries[idx].Name
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// describeCriteria lists the active filters for the summary line.
func describeCriteria(criteria browse.Criteria, authors, genres []catalog.Entry) []string {
	var filters []string
	if strings.TrimSpace(criteria.Title) != "" {
		filters = append(filters, fmt.Sprintf("title %q", criteria.Title))
	}
	if criteria.Author != browse.Any && criteria.Author != "" {
		filters = append(filters, "author "+entryName(authors, indexOfEntry(authors, criteria.Author)))
	}
	if criteria.Genre != browse.Any && criteria.Genre != "" {
		filters = append(filters, "genre "+entryName(genres, indexOfEntry(genres, criteria.Genre)))
	}
	return filters
}
