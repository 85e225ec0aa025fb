package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func parseColorMode(s string) (colorMode, error) {
	switch m := colorMode(s); m {
	case colorAuto, colorAlways, colorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid --color %q (expected auto, always or never)", s)
}

// profileFor picks the escape profile for output written to w.
func profileFor(mode colorMode, w io.Writer) termenv.Profile {
	switch mode {
	case colorAlways:
		return termenv.ANSI
	case colorNever:
		return termenv.Ascii
	}
	if termenv.EnvNoColor() || !isTerminal(w) {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
