package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// ErrEmptyResult means a query succeeded but returned no rows. It is a
// distinct outcome rather than a failure, so callers can print a hint
// instead of a stack of errors.
var ErrEmptyResult = errors.New("empty result, are all your inputs correct?")

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render lays the table out as readable text, one line per row, in the
// order given. Rows narrower than the header list are padded with blank
// cells and wider rows are truncated for display; rendering never
// re-sorts and never fails on a ragged row.
func Render(t *Table) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrEmptyResult
	}

	width := len(t.Headers)

	cells := make([][]string, len(t.Rows))

	for ri, row := range t.Rows {
		line := make([]string, width)

		for ci := range width {
			if ci < len(row) {
				line[ci] = formatCell(row[ci])
			}
		}

		cells[ri] = line
	}

	out := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Headers(t.Headers...).
		Rows(cells...)

	return out.Render(), nil
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
