package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders the position of the visible showcase within the gallery.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a position bar for a gallery of total showcases.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, total: total}
}

// WithWidth sets the bar width in cells.
func (p Progress) WithWidth(width int) Progress {
	if width > 0 {
		p.bar.Width = width
	}
	return p
}

// View renders the bar for the 1-based position current.
func (p Progress) View(current int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(current)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", current, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
