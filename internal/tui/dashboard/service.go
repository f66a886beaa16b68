package dashboard

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// Browser is what the dashboard needs from the browsing controller. Every
// user operation goes through Dispatch; the rest is read-only.
type Browser interface {
	Dispatch(cmd browse.Command) (browse.Result, error)
	State() browse.State
	Criteria() browse.Criteria
	Theme() browse.Theme
	AuthorOptions() []catalog.Entry
	GenreOptions() []catalog.Entry
}

var _ Browser = (*browse.Controller)(nil)
