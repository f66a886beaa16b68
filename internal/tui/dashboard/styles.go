package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookshelf/internal/browse"
)

// palette holds the colour slots a theme fills in.
type palette struct {
	background lipgloss.Color
	foreground lipgloss.Color
	muted      lipgloss.Color
	accent     lipgloss.Color
	border     lipgloss.Color
	danger     lipgloss.Color
}

var (
	dayPalette = palette{
		background: lipgloss.Color("#ffffff"),
		foreground: lipgloss.Color("#0a0a14"),
		muted:      lipgloss.Color("#64748b"),
		accent:     lipgloss.Color("#2563eb"),
		border:     lipgloss.Color("#cbd5e1"),
		danger:     lipgloss.Color("#dc2626"),
	}

	nightPalette = palette{
		background: lipgloss.Color("#0a0a14"),
		foreground: lipgloss.Color("#ffffff"),
		muted:      lipgloss.Color("#94a3b8"),
		accent:     lipgloss.Color("#60a5fa"),
		border:     lipgloss.Color("#334155"),
		danger:     lipgloss.Color("#f87171"),
	}
)

func paletteFor(theme browse.Theme) palette {
	if theme.Dark() {
		return nightPalette
	}
	return dayPalette
}

// styles is the full set of lipgloss styles for one theme.
type styles struct {
	theme browse.Theme

	app            lipgloss.Style
	title          lipgloss.Style
	header         lipgloss.Style
	item           lipgloss.Style
	selectedItem   lipgloss.Style
	author         lipgloss.Style
	muted          lipgloss.Style
	button         lipgloss.Style
	buttonDisabled lipgloss.Style
	empty          lipgloss.Style
	overlay        lipgloss.Style
	label          lipgloss.Style
	focusedLabel   lipgloss.Style
	value          lipgloss.Style
	errorBanner    lipgloss.Style
	footer         lipgloss.Style
}

func newStyles(theme browse.Theme) styles {
	p := paletteFor(theme)

	return styles{
		theme: theme,

		app: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.background),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			PaddingLeft(1).
			PaddingRight(1),

		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.border).
			MarginBottom(1),

		item: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(p.foreground),

		selectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(p.accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.accent),

		author: lipgloss.NewStyle().Foreground(p.muted),
		muted:  lipgloss.NewStyle().Foreground(p.muted),

		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 2).
			MarginTop(1),

		buttonDisabled: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2).
			MarginTop(1),

		empty: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2).
			PaddingLeft(2),

		overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2).
			Width(64),

		label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true).
			Width(10),

		focusedLabel: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Width(10),

		value: lipgloss.NewStyle().Foreground(p.foreground),

		errorBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			MarginBottom(1),

		footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border).
			MarginTop(1),
	}
}
