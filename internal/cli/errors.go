package cli

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidInteger ErrorKind = iota
	MonthOutOfRange
	YearOutOfRange
	InvalidMonth
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInteger:
		return "invalid integer"
	case MonthOutOfRange:
		return "month out of range"
	case YearOutOfRange:
		return "year out of range"
	case InvalidMonth:
		return "invalid month"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports a command line value that could not be used. Input is
// the offending text as the user typed it.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidInteger:
		return fmt.Sprintf("Invalid integer %q", e.Input)
	case MonthOutOfRange:
		return fmt.Sprintf("month %q not in the range 1 through 12", e.Input)
	case YearOutOfRange:
		return fmt.Sprintf("year %q not in the range 1 through 9999", e.Input)
	case InvalidMonth:
		return fmt.Sprintf("Invalid month %q", e.Input)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Input)
}

func errParse(kind ErrorKind, input string) error {
	return &ParseError{Kind: kind, Input: input}
}
