package render

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/isocal/internal/calendar"
)

// PlainOptions controls how the renderer behaves.
type PlainOptions struct {
	Writer  io.Writer
	Command calendar.Command
	Today   calendar.Date
	NoColor bool
	Logger  *log.Logger
}

// RunPlain renders the requested months exactly once. Nothing is written
// unless every month renders.
func RunPlain(opts PlainOptions) error {
	if opts.Command == nil {
		return errors.New("no calendar command")
	}
	if opts.Today.IsZero() {
		return errors.New("today's date is not set")
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	months, err := opts.Command.Months()
	if err != nil {
		return err
	}
	opts.Logger.Debug("rendering", "command", opts.Command, "months", len(months), "today", opts.Today)

	styles := NewStyles(NewRenderer(opts.Writer, opts.NoColor))
	blocks, err := BuildBlocks(months, opts.Today, styles)
	if err != nil {
		return err
	}

	if f, ok := opts.Writer.(*os.File); ok {
		if width, ok := DetectWidth(f); ok && width < GridWidth && len(blocks) > 1 {
			opts.Logger.Warn("terminal is narrower than the calendar grid", "columns", width, "need", GridWidth)
		}
	}

	output := Layout(blocks)
	if y, ok := opts.Command.(calendar.Year); ok {
		output = YearHeading(strconv.Itoa(y.Year)) + "\n\n" + output
	}
	_, err = io.WriteString(opts.Writer, output)
	return err
}

// DetectWidth reports the width of f when it is a terminal.
func DetectWidth(f *os.File) (int, bool) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0, false
	}
	return w, true
}
