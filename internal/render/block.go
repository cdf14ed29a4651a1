package render

import (
	"fmt"
	"strings"

	"github.com/lululau/isocal/internal/calendar"
	"github.com/lululau/isocal/internal/textwidth"
)

const (
	// BlockLines is the fixed height of a rendered month.
	BlockLines = 8
	// BlockWidth is the unstyled width of every line of a block: a three
	// column week gutter plus seven three column day fields.
	BlockWidth = 24

	titleIndent   = "   "
	titleWidth    = BlockWidth - len(titleIndent)
	weekdayHeader = "    Mo Tu We Th Fr Sa Su"
)

var blankLine = strings.Repeat(" ", BlockWidth)

// Block is one month: title, weekday header and six week slots. Slots past
// the last week of the month hold blank filler so blocks always line up.
type Block [BlockLines]string

// BuildBlocks renders each month in order. Any failure aborts the whole
// batch.
func BuildBlocks(months []calendar.Month, today calendar.Date, st Styles) ([]Block, error) {
	blocks := make([]Block, len(months))
	for i, m := range months {
		block, err := RenderMonth(m, today, st)
		if err != nil {
			return nil, fmt.Errorf("render %v: %w", m, err)
		}
		blocks[i] = block
	}
	return blocks, nil
}

// RenderMonth lays m out as a Block, highlighting today.
func RenderMonth(m calendar.Month, today calendar.Date, st Styles) (Block, error) {
	var b Block
	first, err := m.FirstDate()
	if err != nil {
		return b, err
	}
	week, err := m.FirstWeek()
	if err != nil {
		return b, err
	}

	b[0] = titleIndent + textwidth.Center(first.Month().String(), titleWidth)
	b[1] = weekdayHeader
	pos := 2
	for pos < BlockLines && m.ContainsWeek(week) {
		line, err := renderWeek(m, week, today, st)
		if err != nil {
			return b, err
		}
		b[pos] = line
		pos++
		if week, err = week.Next(); err != nil {
			return b, err
		}
	}
	for ; pos < BlockLines; pos++ {
		b[pos] = blankLine
	}
	return b, nil
}

func renderWeek(m calendar.Month, w calendar.Week, today calendar.Date, st Styles) (string, error) {
	days, err := w.Days()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(BlockWidth * 4)
	sb.WriteString(st.Gutter.Render(fmt.Sprintf("%2d ", w.Number())))
	for _, d := range days {
		cell := fmt.Sprintf("%3d", d.Day())
		switch {
		case !m.ContainsDate(d):
			cell = st.OutOfMonth.Render(cell)
		case d == today:
			cell = st.Today.Render(cell)
		}
		sb.WriteString(cell)
	}
	return sb.String(), nil
}
