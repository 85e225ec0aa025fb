package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const monthsPerRow = 3

// YearWidth is the visible width of a row of three months.
const YearWidth = monthsPerRow * RowWidth

// FormatYear renders all twelve months of year, three across, under a
// year title.
func FormatYear(year int, today CalendarDate) []string {
	return ansiRenderer.FormatYear(year, today)
}

func (r Renderer) FormatYear(year int, today CalendarDate) []string {
	rows := []string{fmt.Sprintf("%32d", year)}
	for first := 1; first <= 12; first += monthsPerRow {
		if first > 1 {
			rows = append(rows, "")
		}
		blocks := make([]string, 0, monthsPerRow)
		for m := first; m < first+monthsPerRow; m++ {
			blocks = append(blocks, strings.Join(r.FormatMonth(year, m, false, today), "\n"))
		}
		rows = append(rows, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")...)
	}
	return rows
}
