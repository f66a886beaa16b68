package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

const statusTTL = 4 * time.Second

// commandCmd wraps a browse command so it is processed by Update.
func commandCmd(cmd browse.Command) tea.Cmd {
	return func() tea.Msg {
		return CommandMsg{Command: cmd}
	}
}

// SubmitFilterCmd runs a filter through the dashboard.
func SubmitFilterCmd(criteria browse.Criteria) tea.Cmd {
	return commandCmd(browse.Command{Name: browse.CommandSubmitFilter, Criteria: criteria})
}

// expireStatusCmd schedules the status line identified by seq to be cleared.
func expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return StatusExpiredMsg{Seq: seq}
	})
}
