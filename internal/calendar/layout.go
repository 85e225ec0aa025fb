package calendar

const (
	daysPerWeek   = 7
	weeksPerMonth = 6
)

// Cell is one slot of a month layout. Day is zero for a blank slot.
type Cell struct {
	Weekday int
	Day     int
}

func (c Cell) Blank() bool {
	return c.Day == 0
}

// LayoutMonth places the days of month on a 6x7 grid, Sunday first. It
// always returns 42 cells in row-major order.
func LayoutMonth(year, month int) []Cell {
	first := FirstWeekday(year, month)
	last := LastDayOfMonth(year, month)

	cells := make([]Cell, weeksPerMonth*daysPerWeek)
	for i := range cells {
		cells[i].Weekday = i % daysPerWeek
		if d := i - first + 1; d >= 1 && d <= last {
			cells[i].Day = d
		}
	}
	return cells
}
