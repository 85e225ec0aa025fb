package cli

import (
	"errors"
	"os"

	"calr/internal/calendar"
)

var errYearConflict = errors.New("--year cannot be combined with a positional year")

// Config is a validated request to print a calendar. Month is zero when the
// whole year is wanted.
type Config struct {
	Month int
	Year  int
	Today calendar.CalendarDate
}

func (c Config) WholeYear() bool {
	return c.Month == 0
}

// resolveConfig validates the raw arguments and fills in defaults from today.
// month and year are the raw texts; nil means the argument was not given.
func resolveConfig(month *string, showYear bool, year *string, today calendar.CalendarDate) (Config, error) {
	cfg := Config{Year: today.Year, Today: today}

	if showYear {
		if year != nil {
			return Config{}, errYearConflict
		}
		return cfg, nil
	}

	if month != nil {
		m, err := ParseMonth(*month)
		if err != nil {
			return Config{}, err
		}
		cfg.Month = m
	}
	if year != nil {
		y, err := ParseYear(*year)
		if err != nil {
			return Config{}, err
		}
		cfg.Year = y
	}
	if month == nil && year == nil {
		cfg.Month = today.Month
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
