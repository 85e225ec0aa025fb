package calendar

import (
	"fmt"
	"time"
)

// CalendarDate is a Gregorian date without a time component.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: int(m), Day: d}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayAbbrevs = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthNames returns the English month names, January first.
func MonthNames() []string {
	return monthNames[:]
}

// MonthName returns the English name of a 1-based month.
func MonthName(month int) string {
	mustMonth(month)
	return monthNames[month-1]
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// LastDayOfMonth returns the number of days in month of year. It panics if
// month is not in 1..12; callers validate user input first.
func LastDayOfMonth(year, month int) int {
	mustMonth(month)
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// FirstWeekday returns the weekday index (Sunday=0) of the first day of month.
func FirstWeekday(year, month int) int {
	mustMonth(month)
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

func mustMonth(month int) {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("calendar: month %d out of range", month))
	}
}
