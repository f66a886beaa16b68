package dashboard

import "github.com/alexisbeaulieu97/bookshelf/internal/browse"

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewSearch
	ViewSettings
	ViewHelp
)

func (v ViewMode) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewSearch:
		return "search"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CommandMsg asks the model to run a browse command. It lets callers outside
// the key handler drive the dashboard, for example an initial filter.
type CommandMsg struct {
	Command browse.Command
}

// StatusExpiredMsg clears the status line if it is still the one identified
// by Seq.
type StatusExpiredMsg struct {
	Seq int
}
