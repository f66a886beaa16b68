package browse

import (
	"slices"

	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
)

// ViewPort is everything the controller needs from a renderer. Calls are
// one-way; a ViewPort never calls back into the controller.
type ViewPort interface {
	// RenderPage replaces every displayed item.
	RenderPage(items []catalog.Preview)
	// AppendPage adds items after those already displayed.
	AppendPage(items []catalog.Preview)
	ShowRemainingCount(n int)
	ShowDetail(detail catalog.Detail)
	ShowEmptyState(empty bool)
	ApplyTheme(theme Theme)
}

// Collector is a ViewPort that keeps what it was told to show. The CLI uses
// it to render non-interactively and tests use it to observe the controller.
type Collector struct {
	Items     []catalog.Preview
	Remaining int
	Empty     bool
	Detail    *catalog.Detail
	Theme     Theme

	Renders int
	Appends int
}

// RenderPage implements ViewPort.
func (c *Collector) RenderPage(items []catalog.Preview) {
	c.Items = slices.Clone(items)
	c.Renders++
}

// AppendPage implements ViewPort.
func (c *Collector) AppendPage(items []catalog.Preview) {
	c.Items = append(c.Items, items...)
	c.Appends++
}

// ShowRemainingCount implements ViewPort.
func (c *Collector) ShowRemainingCount(n int) {
	c.Remaining = n
}

// ShowDetail implements ViewPort.
func (c *Collector) ShowDetail(detail catalog.Detail) {
	c.Detail = &detail
}

// ShowEmptyState implements ViewPort.
func (c *Collector) ShowEmptyState(empty bool) {
	c.Empty = empty
}

// ApplyTheme implements ViewPort.
func (c *Collector) ApplyTheme(theme Theme) {
	c.Theme = theme
}

var _ ViewPort = (*Collector)(nil)
