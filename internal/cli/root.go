package cli

import (
	"io"
	"strings"
	"time"

	"calr/internal/calendar"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is set at build time with -ldflags "-X calr/internal/cli.version=...".
var version = "dev"

// App holds the flag values of one invocation.
type App struct {
	// Now is read once per invocation to find today.
	Now func() time.Time

	month     string
	wholeYear bool
	color     string
	verbose   int
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{Now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "calr [flags] [YEAR]",
		Short:         "Print a month or year calendar",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Current month
  calr

  # A month of the current year, by name or number
  calr -m feb
  calr -m 2

  # A whole year, or the current one
  calr 2020
  calr -y
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var month, year *string
			if cmd.Flags().Changed("month") {
				month = &app.month
			}
			if len(args) == 1 {
				year = &args[0]
			}
			return app.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), month, year)
		},
	}

	app.registerFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("month", "year")

	return cmd
}

func (app *App) registerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&app.month, "month", "m", "", "Month name or number (1-12)")
	fs.BoolVarP(&app.wholeYear, "year", "y", false, "Show the whole current year")
	fs.StringVar(&app.color, "color", envOr("CALR_COLOR", string(colorAuto)), "Highlight today (auto|always|never)")
	fs.CountVarP(&app.verbose, "verbose", "v", "Log more to stderr (repeatable)")
}

func (app *App) run(out, errOut io.Writer, month, year *string) error {
	log := newLogger(errOut, app.verbose)

	mode, err := parseColorMode(app.color)
	if err != nil {
		return err
	}

	today := calendar.DateOf(app.Now())
	cfg, err := resolveConfig(month, app.wholeYear, year, today)
	if err != nil {
		log.Debug().Err(err).Msg("rejected arguments")
		return err
	}

	r := calendar.Renderer{Profile: profileFor(mode, out)}
	log.Debug().
		Int("year", cfg.Year).
		Int("month", cfg.Month).
		Stringer("today", cfg.Today).
		Bool("color", r.Profile != termenv.Ascii).
		Msg("resolved calendar")

	var rows []string
	if cfg.WholeYear() {
		rows = r.FormatYear(cfg.Year, cfg.Today)
	} else {
		rows = r.FormatMonth(cfg.Year, cfg.Month, true, cfg.Today)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(out, b.String())
	return err
}
