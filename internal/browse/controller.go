package browse

import (
	"github.com/alexisbeaulieu97/bookshelf/internal/catalog"
	"github.com/alexisbeaulieu97/bookshelf/internal/logger"
)

// Controller owns the single browsing State and keeps a ViewPort in sync
// with it. It is not safe for concurrent use; every call is expected to come
// from the one loop handling user input.
type Controller struct {
	catalog  *catalog.Catalog
	view     ViewPort
	log      *logger.Logger
	state    State
	criteria Criteria
	theme    Theme
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger attaches a logger for transition tracing at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithTheme sets the theme applied by Start.
func WithTheme(theme Theme) Option {
	return func(c *Controller) {
		c.theme = theme
	}
}

// NewController builds a controller whose initial matches are the whole
// catalog. Nothing is rendered until Start.
func NewController(cat *catalog.Catalog, pageSize int, view ViewPort, opts ...Option) *Controller {
	c := &Controller{
		catalog:  cat,
		view:     view,
		state:    NewState(pageSize, cat.Books()),
		criteria: AnyCriteria(),
		theme:    ThemeDay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start pushes the initial state to the view.
func (c *Controller) Start() {
	c.view.ApplyTheme(c.theme)
	c.renderFirstPage()
	c.log.WithFields(map[string]any{"books": c.catalog.Len(), "page_size": c.state.PageSize(), "theme": string(c.theme)}).Debug("browser started")
}

// SubmitFilter validates criteria, recomputes the matches and resets to the
// first page. Rejected criteria leave the state untouched.
func (c *Controller) SubmitFilter(criteria Criteria) error {
	if err := criteria.Validate(c.catalog); err != nil {
		return err
	}

	c.state = c.state.WithMatches(Filter(c.catalog, criteria))
	c.criteria = criteria
	c.renderFirstPage()

	c.log.WithFields(map[string]any{
		"title":   criteria.Title,
		"author":  criteria.Author,
		"genre":   criteria.Genre,
		"matches": c.state.Total(),
	}).Debug("filter applied")
	return nil
}

// RequestMorePages reveals the next page. It is a no-op returning false when
// nothing remains.
func (c *Controller) RequestMorePages() bool {
	next := c.state.NextSlice()
	advanced, ok := c.state.Advance()
	if !ok {
		return false
	}
	c.state = advanced

	c.view.AppendPage(c.catalog.Previews(next))
	c.view.ShowRemainingCount(c.state.Remaining())

	c.log.WithFields(map[string]any{"page": c.state.Page(), "remaining": c.state.Remaining()}).Debug("page advanced")
	return true
}

// SelectItem shows the detail view for id. Lookup is against the whole
// catalog, not the current matches. Unknown ids return false and render
// nothing.
func (c *Controller) SelectItem(id string) bool {
	book, ok := c.catalog.FindByID(id)
	if !ok {
		c.log.WithFields(map[string]any{"id": id}).Debug("selected book not found")
		return false
	}
	c.view.ShowDetail(c.catalog.Detail(book))
	return true
}

// SetTheme switches between the day and night themes.
func (c *Controller) SetTheme(name string) error {
	theme, err := ParseTheme(name)
	if err != nil {
		return err
	}
	c.theme = theme
	c.view.ApplyTheme(theme)
	return nil
}

// State returns the current browsing state.
func (c *Controller) State() State {
	return c.state
}

// Criteria returns the last applied criteria.
func (c *Controller) Criteria() Criteria {
	return c.criteria
}

// Theme returns the active theme.
func (c *Controller) Theme() Theme {
	return c.theme
}

// Catalog exposes the catalog the controller browses.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// AuthorOptions lists the author choices for a search form, "any" first.
func (c *Controller) AuthorOptions() []catalog.Entry {
	return withAnyOption("All Authors", c.catalog.Authors())
}

// GenreOptions lists the genre choices for a search form, "any" first.
func (c *Controller) GenreOptions() []catalog.Entry {
	return withAnyOption("All Genres", c.catalog.Genres())
}

func (c *Controller) renderFirstPage() {
	c.view.RenderPage(c.catalog.Previews(c.state.VisibleSlice()))
	c.view.ShowRemainingCount(c.state.Remaining())
	c.view.ShowEmptyState(c.state.Total() == 0)
}

func withAnyOption(label string, entries []catalog.Entry) []catalog.Entry {
	options := make([]catalog.Entry, 0, len(entries)+1)
	options = append(options, catalog.Entry{ID: Any, Name: label})
	return append(options, entries...)
}
