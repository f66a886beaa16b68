package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/tui/components"
)

const emptyStateMessage = "No results found. Your filters might be too narrow."

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	s := newStyles(m.screen.Theme())

	var body string
	switch m.viewMode {
	case ViewDetail:
		body = m.renderDetailView(s)
	case ViewSearch:
		body = m.renderSearchView(s)
	case ViewSettings:
		body = m.renderSettingsView(s)
	case ViewHelp:
		body = m.renderHelpView(s)
	default:
		body = m.renderListView(s)
	}

	return s.app.Width(m.width).Render(body)
}

// renderListView renders the book list with its summary and footer
func (m Model) renderListView(s styles) string {
	var content strings.Builder

	content.WriteString(m.renderHeader(s))
	content.WriteString("\n")

	if banner := m.renderStatus(s); banner != "" {
		content.WriteString(banner)
		content.WriteString("\n")
	}

	if m.screen.Empty() {
		content.WriteString(s.empty.Render(emptyStateMessage))
		content.WriteString("\n")
	} else {
		content.WriteString(m.renderBookList(s))
		content.WriteString("\n")
		content.WriteString(m.renderMoreButton(s))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(s))
	return content.String()
}

// renderHeader renders the title, theme indicator and result summary
func (m Model) renderHeader(s styles) string {
	name := "Bookshelf"
	if m.useUnicode {
		name = "📚 " + name
	}
	title := s.title.Render(name)
	theme := s.muted.Render(themeLabel(m.screen.Theme(), m.useUnicode))

	state := m.browser.State()
	shown := m.screen.list.Len()
	summary := components.NewSummary(components.SummaryData{
		Shown:     shown,
		Total:     state.Total(),
		Remaining: m.screen.Remaining(),
		Filters:   describeCriteria(m.browser.Criteria(), m.search.authors, m.search.genres),
	}).View()

	top := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", theme)
	rows := []string{top, s.muted.Render(summary)}
	if state.Total() > 0 {
		rows = append(rows, components.NewProgress(state.Total()).View(shown))
	}

	return s.header.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStatus(s styles) string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusIsError {
		prefix := "! "
		if m.useUnicode {
			prefix = "⚠ "
		}
		return s.errorBanner.Render(prefix + m.statusMsg)
	}
	return s.muted.Render(m.statusMsg)
}

// renderBookList renders the visible window of previews
func (m Model) renderBookList(s styles) string {
	window, offset := m.screen.list.Window(m.scrollOffset, m.listHeight())

	lines := make([]string, 0, len(window))
	for i, preview := range window {
		line := preview.Title + " " + s.author.Render("by "+preview.AuthorName)
		if offset+i == m.cursor {
			lines = append(lines, s.selectedItem.Render(line))
			continue
		}
		lines = append(lines, s.item.Render(line))
	}
	return strings.Join(lines, "\n")
}

// renderMoreButton renders the pagination control. It stays visible with a
// zero count once every match is revealed, but in the disabled style.
func (m Model) renderMoreButton(s styles) string {
	remaining := m.screen.Remaining()
	label := fmt.Sprintf("Show more (%d)", remaining)
	if remaining == 0 {
		return s.buttonDisabled.Render(label)
	}
	return s.button.Render(label)
}

func (m Model) renderFooter(s styles) string {
	return s.footer.Render(m.help.View(m.keys))
}

// renderDetailView renders the overlay for the selected book
func (m Model) renderDetailView(s styles) string {
	detail, ok := m.screen.Detail()
	if !ok {
		return m.renderListView(s)
	}

	rows := []string{
		s.title.UnsetPaddingLeft().Render(detail.Book.Title),
		s.author.Render(detail.Subtitle()),
		"",
	}
	if len(detail.GenreNames) > 0 {
		rows = append(rows, s.label.Render("Genres")+s.value.Render(strings.Join(detail.GenreNames, ", ")))
	}
	rows = append(rows, s.label.Render("Cover")+s.muted.Render(detail.Book.Image))
	if detail.Book.Description != "" {
		rows = append(rows, "", s.value.Render(detail.Book.Description))
	}

	overlay := s.overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, overlay, s.footer.Render("esc close • q quit"))
}

// renderSearchView renders the filter form
func (m Model) renderSearchView(s styles) string {
	f := m.search
	rows := []string{
		s.title.UnsetPaddingLeft().Render("Search"),
		"",
		m.formRow(s, "Title", f.title.View(), f.focus == fieldTitle),
		m.formRow(s, "Author", m.picker(f.authorLabel(), f.focus == fieldAuthor), f.focus == fieldAuthor),
		m.formRow(s, "Genre", m.picker(f.genreLabel(), f.focus == fieldGenre), f.focus == fieldGenre),
	}

	if banner := m.renderStatus(s); banner != "" {
		rows = append(rows, "", banner)
	}

	overlay := s.overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, overlay, s.footer.Render(m.help.View(m.formKeys)))
}

// renderSettingsView renders the theme picker
func (m Model) renderSettingsView(s styles) string {
	option := func(theme browse.Theme, label string) string {
		mark := "( )"
		if m.settings == theme {
			mark = "(*)"
			if m.useUnicode {
				mark = "(•)"
			}
			return s.focusedLabel.UnsetWidth().Render(mark + " " + label)
		}
		return s.value.Render(mark + " " + label)
	}

	rows := []string{
		s.title.UnsetPaddingLeft().Render("Settings"),
		"",
		s.label.Render("Theme") + option(browse.ThemeDay, "Day") + "   " + option(browse.ThemeNight, "Night"),
	}

	overlay := s.overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.JoinVertical(lipgloss.Left, overlay, s.footer.Render(m.help.View(m.formKeys)))
}

// renderHelpView renders every key binding
func (m Model) renderHelpView(s styles) string {
	full := m.help
	full.ShowAll = true

	rows := []string{
		s.title.UnsetPaddingLeft().Render("Keyboard shortcuts"),
		"",
		full.View(m.keys),
	}
	return s.overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) formRow(s styles, label, value string, focused bool) string {
	style := s.label
	if focused {
		style = s.focusedLabel
	}
	return style.Render(label) + value
}

func (m Model) picker(label string, focused bool) string {
	if !focused {
		return label
	}
	if m.useUnicode {
		return "‹ " + label + " ›"
	}
	return "< " + label + " >"
}

func themeLabel(theme browse.Theme, unicode bool) string {
	if !unicode {
		return string(theme)
	}
	if theme.Dark() {
		return "☾ night"
	}
	return "☀ day"
}
