package cli

import (
	"strconv"
	"strings"

	"calr/internal/calendar"
)

const (
	minYear = 1
	maxYear = 9999
)

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errParse(InvalidInteger, s)
	}
	return n, nil
}

// ParseYear accepts an integer year in 1..9999.
func ParseYear(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < minYear || n > maxYear {
		return 0, errParse(YearOutOfRange, s)
	}
	return n, nil
}

// ParseMonth accepts a month number in 1..12 or a case-insensitive prefix of
// an English month name. Ambiguous prefixes resolve to the earliest month,
// so "ma" is March.
func ParseMonth(s string) (int, error) {
	if n, err := parseInt(s); err == nil {
		if n < 1 || n > 12 {
			return 0, errParse(MonthOutOfRange, s)
		}
		return n, nil
	}
	if s == "" {
		return 0, errParse(InvalidMonth, s)
	}
	lower := strings.ToLower(s)
	for i, name := range calendar.MonthNames() {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i + 1, nil
		}
	}
	return 0, errParse(InvalidMonth, s)
}
