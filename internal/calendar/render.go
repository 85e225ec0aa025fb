package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

const (
	// RowWidth is the visible width of every row of a month grid.
	RowWidth = 22
	// MonthRows is the number of rows in a month grid.
	MonthRows = 2 + weeksPerMonth

	titleWidth = 20
	cellWidth  = 3
)

// Renderer turns month layouts into text. Profile decides whether today's
// cell is highlighted with escape sequences; termenv.Ascii disables it.
type Renderer struct {
	Profile termenv.Profile
}

var ansiRenderer = Renderer{Profile: termenv.ANSI}

// FormatMonth renders month of year as MonthRows rows of RowWidth columns,
// highlighting today in reverse video when it falls in that month.
func FormatMonth(year, month int, printYear bool, today CalendarDate) []string {
	return ansiRenderer.FormatMonth(year, month, printYear, today)
}

func (r Renderer) FormatMonth(year, month int, printYear bool, today CalendarDate) []string {
	title := MonthName(month)
	if printYear {
		title = fmt.Sprintf("%s %d", title, year)
	}

	highlight := 0
	if today.Year == year && today.Month == month {
		highlight = today.Day
	}

	rows := make([]string, 0, MonthRows)
	rows = append(rows, center(title, titleWidth)+"  ")
	rows = append(rows, strings.Join(weekdayAbbrevs[:], " ")+"  ")

	cells := LayoutMonth(year, month)
	for w := 0; w < weeksPerMonth; w++ {
		rows = append(rows, r.week(cells[w*daysPerWeek:(w+1)*daysPerWeek], highlight))
	}
	return rows
}

func (r Renderer) week(cells []Cell, highlight int) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Blank() {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		digits := strconv.Itoa(c.Day)
		b.WriteString(strings.Repeat(" ", cellWidth-1-len(digits)))
		if c.Day == highlight {
			digits = r.Profile.String(digits).Reverse().String()
		}
		b.WriteString(digits)
		b.WriteByte(' ')
	}
	b.WriteByte(' ')
	return b.String()
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
