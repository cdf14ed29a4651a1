package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lululau/isocal/internal/calendar"
	"github.com/lululau/isocal/internal/config"
	"github.com/lululau/isocal/internal/render"
)

type rootOptions struct {
	before   int
	after    int
	context  int
	fullYear bool
	noColor  bool
	debug    bool
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "isocal [year] [month]",
		Short: "Print a calendar with ISO week numbers",
		Long: `Print a multi-month calendar with ISO 8601 week numbers.

  no arguments   a window of months around the current month
  -y             the current year
  1983           the whole of 1983
  2012 12        a window of months around December 2012

The window defaults come from DATE_BEFORE_NOARGS, DATE_AFTER_NOARGS (no
arguments) and DATE_BEFORE_ARGS, DATE_AFTER_ARGS (year and month given).`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args, now)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.before, "before", "b", 0, "months to show before the center month")
	flags.IntVarP(&opts.after, "after", "a", 0, "months to show after the center month")
	flags.IntVarP(&opts.context, "context", "c", 0, "months to show before and after the center month")
	flags.BoolVarP(&opts.fullYear, "year", "y", false, "show the current year")
	flags.BoolVarP(&opts.noColor, "no-color", "N", false, "disable styling")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "isocal",
		Level:  log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(cmd *cobra.Command, opts *rootOptions, args []string, now func() time.Time) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)

	defaults, err := config.Load()
	if err != nil {
		return err
	}
	logger.Debug("environment defaults", "defaults", fmt.Sprintf("%+v", defaults))

	req, err := parseRequest(opts.fullYear, args)
	if err != nil {
		return err
	}
	req.Before, req.After, err = resolveCounts(cmd.Flags(), opts, defaults, req.HasArgs())
	if err != nil {
		return err
	}

	today := calendar.Today(now)
	command, err := req.Command(today)
	if err != nil {
		return err
	}
	logger.Debug("resolved command", "command", command, "today", today)

	return render.RunPlain(render.PlainOptions{
		Writer:  cmd.OutOrStdout(),
		Command: command,
		Today:   today,
		NoColor: opts.noColor || defaults.NoColor,
		Logger:  logger,
	})
}

// resolveCounts applies, in increasing precedence, the environment
// defaults, -c and then -b / -a.
func resolveCounts(flags *pflag.FlagSet, opts *rootOptions, defaults config.Defaults, hasArgs bool) (before, after int, err error) {
	before, after = defaults.Counts(hasArgs)
	if flags.Changed("context") {
		before, after = opts.context, opts.context
	}
	if flags.Changed("before") {
		before = opts.before
	}
	if flags.Changed("after") {
		after = opts.after
	}
	if before < 0 || after < 0 {
		return 0, 0, fmt.Errorf("month counts must not be negative (before %d, after %d)", before, after)
	}
	return before, after, nil
}

func parseRequest(showYear bool, args []string) (calendar.Request, error) {
	req := calendar.Request{FullYear: showYear}
	switch len(args) {
	case 0:
	case 1:
		year, err := parseNumber(args[0], "year")
		if err != nil {
			return req, err
		}
		req.Year = &year
	case 2:
		if showYear {
			return req, errors.New("-y takes at most one year argument")
		}
		year, err := parseNumber(args[0], "year")
		if err != nil {
			return req, err
		}
		m, err := datetime.ParseNumericMonth(args[1])
		if err != nil {
			return req, &calendar.InvalidMonthError{Value: args[1]}
		}
		month := int(m)
		req.Year, req.Month = &year, &month
	default:
		return req, errors.New("too many arguments, see --help")
	}
	return req, nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &calendar.OverflowError{Op: field, Value: value}
	}
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}
