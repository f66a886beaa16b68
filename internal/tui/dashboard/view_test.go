package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

func TestView_Initializing(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m.width = 0
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_List(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Bookshelf")
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "by Frank Herbert")
	assert.Contains(t, view, "Foundation")
	assert.NotContains(t, view, "Dune Messiah", "third book is not revealed yet")
	assert.Contains(t, view, "Show more (3)")
	assert.Contains(t, view, "Showing 2 of 5 books")
	assert.Contains(t, view, "2/5")
}

func TestView_MoreButtonAtZero(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runes("m"))
	m, _ = update(t, m, runes("m"))

	view := m.View()
	assert.Contains(t, view, "Show more (0)")
	assert.Contains(t, view, "All results shown")
	assert.Contains(t, view, "Children of Dune")
}

func TestView_EmptyState(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, SubmitFilterCmd(browse.Criteria{Title: "nothing here", Author: browse.Any, Genre: browse.Any})())

	view := m.View()
	assert.Contains(t, view, emptyStateMessage)
	assert.NotContains(t, view, "Show more")
}

func TestView_Detail(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "Frank Herbert (1965)")
	assert.Contains(t, view, "Science Fiction")
	assert.Contains(t, view, "Spice.")
}

func TestView_SearchAndSettings(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)

	search, _ := update(t, m, runes("/"))
	view := search.View()
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "All Authors")
	assert.Contains(t, view, "All Genres")

	settings, _ := update(t, m, runes("s"))
	view = settings.View()
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "Day")
	assert.Contains(t, view, "Night")
}

func TestView_ErrorBanner(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, CommandMsg{Command: browse.Command{Name: browse.CommandSetTheme, Theme: "sepia"}})

	assert.Contains(t, m.View(), "Invalid theme")
}

func TestView_ThemeIndicator(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "day")

	m, _ = update(t, m, runes("t"))
	assert.Contains(t, m.View(), "night")

	plain := NewModel(m.browser, m.screen, WithUnicode(false))
	view := plain.View()
	assert.Contains(t, view, "night")
	assert.NotContains(t, view, "📚")
}

func TestView_Help(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runes("?"))

	view := m.View()
	assert.Contains(t, view, "Keyboard shortcuts")
	assert.Contains(t, view, "show more")
	assert.Contains(t, view, "toggle theme")
}
