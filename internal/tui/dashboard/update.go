package dashboard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	apperrors "github.com/alexisbeaulieu97/bookshelf/pkg/errors"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CommandMsg:
		return m.dispatch(msg.Command)

	case StatusExpiredMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
			m.statusIsError = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewSearch:
		return m.handleSearchKeys(msg)
	case ViewSettings:
		return m.handleSettingsKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleListKeys(msg)
	}
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		preview, ok := m.SelectedPreview()
		if !ok {
			return m, nil
		}
		return m.dispatch(browse.Command{Name: browse.CommandSelect, ID: preview.ID})

	case key.Matches(msg, m.keys.More):
		return m.dispatch(browse.Command{Name: browse.CommandMore})

	case key.Matches(msg, m.keys.Search):
		m.search = m.search.load(m.browser.Criteria())
		m.viewMode = ViewSearch
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.settings = m.browser.Theme()
		m.viewMode = ViewSettings
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.dispatch(browse.Command{Name: browse.CommandSetTheme, Theme: string(m.browser.Theme().Toggle())})

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.statusMsg = ""
		m.statusIsError = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.search.title.Blur()
		m.viewMode = ViewList
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		return m.dispatch(browse.Command{Name: browse.CommandSubmitFilter, Criteria: m.search.criteria()})

	case key.Matches(msg, m.formKeys.Next):
		m.search = m.search.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.formKeys.Prev):
		m.search = m.search.moveFocus(-1)
		return m, nil
	}

	if m.search.focus != fieldTitle {
		switch {
		case key.Matches(msg, m.formKeys.Left):
			m.search = m.search.cycle(-1)
		case key.Matches(msg, m.formKeys.Right):
			m.search = m.search.cycle(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search.title, cmd = m.search.title.Update(msg)
	return m, cmd
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.viewMode = ViewList
		return m, nil

	case key.Matches(msg, m.formKeys.Left, m.formKeys.Right, m.formKeys.Next, m.formKeys.Prev):
		m.settings = m.settings.Toggle()
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		return m.dispatch(browse.Command{Name: browse.CommandSetTheme, Theme: string(m.settings)})
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.screen.closeDetail()
		m.viewMode = ViewList
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help):
		m.viewMode = ViewList
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// dispatch runs cmd against the browser and moves the dashboard to whatever
// screen the outcome calls for.
func (m Model) dispatch(cmd browse.Command) (tea.Model, tea.Cmd) {
	result, err := m.browser.Dispatch(cmd)
	if err != nil {
		m.log.WithFields(map[string]any{"command": string(cmd.Name)}).Warn(err.Error())
		return m.setStatus(rejectionMessage(cmd.Name, err), true)
	}

	switch cmd.Name {
	case browse.CommandSubmitFilter:
		m.search.title.Blur()
		m.viewMode = ViewList
		m.cursor = 0
		m.scrollOffset = 0
		total := m.browser.State().Total()
		if total == 1 {
			return m.setStatus("1 book matches", false)
		}
		return m.setStatus(fmt.Sprintf("%d books match", total), false)

	case browse.CommandMore:
		if !result.Changed {
			return m.setStatus("No more books to show", false)
		}
		return m, nil

	case browse.CommandSelect:
		if result.Changed {
			m.viewMode = ViewDetail
		}
		return m, nil

	case browse.CommandSetTheme:
		m.settings = m.browser.Theme()
		m.viewMode = ViewList
		return m.setStatus(fmt.Sprintf("Theme set to %s", m.browser.Theme()), false)
	}

	return m, nil
}

func (m Model) setStatus(text string, isError bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.statusMsg = text
	m.statusIsError = isError
	return m, expireStatusCmd(m.statusSeq)
}

// rejectionMessage turns a controller error into status line text.
func rejectionMessage(name browse.CommandName, err error) string {
	prefix := "Rejected"
	switch name {
	case browse.CommandSubmitFilter:
		prefix = "Invalid search"
	case browse.CommandSetTheme:
		prefix = "Invalid theme"
	}

	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) && valErr.Message != "" {
		return prefix + ": " + valErr.Message
	}
	return prefix + ": " + err.Error()
}
