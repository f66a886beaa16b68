package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how much of the match set has been revealed.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given number of matches.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24
	return Progress{bar: bar, total: total}
}

// View renders the bar for the provided number of revealed books.
func (p Progress) View(shown int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(shown)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", shown, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
