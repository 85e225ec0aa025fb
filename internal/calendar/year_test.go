package calendar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatYearShape(t *testing.T) {
	t.Parallel()

	rows := FormatYear(2020, nowhere)
	require.Len(t, rows, 1+4*MonthRows+3)

	assert.Equal(t, strings.Repeat(" ", 28)+"2020", rows[0])
	for g := 0; g < 4; g++ {
		start := 1 + g*(MonthRows+1)
		if g > 0 {
			assert.Empty(t, rows[start-1])
		}
		for _, row := range rows[start : start+MonthRows] {
			assert.Equal(t, YearWidth, ansi.StringWidth(row))
		}
	}
}

func TestFormatYearConcatenatesMonths(t *testing.T) {
	t.Parallel()

	rows := FormatYear(2020, nowhere)
	want := []string{
		"      January               February               March          ",
		"Su Mo Tu We Th Fr Sa  Su Mo Tu We Th Fr Sa  Su Mo Tu We Th Fr Sa  ",
		"          1  2  3  4                     1   1  2  3  4  5  6  7  ",
	}
	assert.Equal(t, want, rows[1:4])

	jan := FormatMonth(2020, 1, false, nowhere)
	feb := FormatMonth(2020, 2, false, nowhere)
	mar := FormatMonth(2020, 3, false, nowhere)
	for i := 0; i < MonthRows; i++ {
		assert.Equal(t, jan[i]+feb[i]+mar[i], rows[1+i])
	}

	oct := FormatMonth(2020, 10, false, nowhere)
	nov := FormatMonth(2020, 11, false, nowhere)
	dec := FormatMonth(2020, 12, false, nowhere)
	last := rows[len(rows)-MonthRows:]
	for i := 0; i < MonthRows; i++ {
		assert.Equal(t, oct[i]+nov[i]+dec[i], last[i])
	}
}

func TestFormatYearHighlightsOnlyToday(t *testing.T) {
	t.Parallel()

	today := CalendarDate{Year: 2021, Month: 4, Day: 7}
	joined := strings.Join(FormatYear(2021, today), "\n")
	assert.Equal(t, 1, strings.Count(joined, "\x1b[7m"))
	assert.Contains(t, joined, "\x1b[7m7\x1b[0m")

	other := strings.Join(FormatYear(2022, today), "\n")
	assert.NotContains(t, other, "\x1b")

	plain := strings.Join(Renderer{Profile: termenv.Ascii}.FormatYear(2021, today), "\n")
	assert.Equal(t, ansi.Strip(joined), plain)
}
