package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a roadmap progress bar like: ■■■□□□□□ 3/8 (37%)
type Progress struct {
	Completed int
	Total     int
	Width     int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(completed, total, width int) Progress {
	return Progress{
		Completed: completed,
		Total:     total,
		Width:     width,
	}
}

// View returns the rendered progress bar string. A zero total renders an
// empty bar at 0% rather than dividing by zero.
func (p Progress) View() string {
	if p.Width <= 0 {
		return ""
	}

	total := p.Total
	if total <= 0 {
		total = 1
	}

	completed := p.Completed
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}

	percent := (completed * 100) / total
	filled := (completed * p.Width) / total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)

	return fmt.Sprintf("%s %d/%d (%d%%)", bar, p.Completed, p.Total, percent)
}
