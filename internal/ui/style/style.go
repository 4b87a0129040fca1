// Package style holds the shared colors and icons of the terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/screener/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Teal   = lipgloss.Color("#0E9384")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Orange = lipgloss.Color("#EA580C")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// CategoryColor returns the display color of a candidate category.
func CategoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryExcellent:
		return Green
	case domain.CategoryGood:
		return Teal
	case domain.CategoryAverage:
		return Yellow
	case domain.CategoryBelowAverage:
		return Orange
	default:
		return Slate
	}
}
