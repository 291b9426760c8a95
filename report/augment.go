package report

import (
	"fmt"
	"slices"

	"github.com/antonybholmes/go-sys/log"
)

// Augment evaluates each computed column spec against each row and returns
// a new table with the derived values appended after the original columns,
// plus any diagnostics encountered.
//
// Failures are soft: a malformed spec disables computed columns for the
// whole call but the original rows still come back, and a cell that cannot
// be computed (out of range reference, non numeric operand, division by
// zero) is appended as nil and reported, leaving the rest of the row and
// all other rows untouched.
func Augment(table *Table, cols []ComputedColumn) (*Table, []string) {
	var diagnostics []string

	if len(table.Rows) == 0 {
		diagnostics = append(diagnostics, ErrEmptyResult.Error())
		return &Table{Headers: slices.Clone(table.Headers)}, diagnostics
	}

	// guard against a header list that does not match the query's actual
	// column count; one diagnostic is enough
	for ri, row := range table.Rows {
		if len(row) > len(table.Headers) {
			diagnostics = append(diagnostics,
				fmt.Sprintf("row %d has %d columns but only %d headers", ri, len(row), len(table.Headers)))
			break
		}
	}

	// shape validation happens once, before any row is processed
	for _, col := range cols {
		if err := col.validate(); err != nil {
			diagnostics = append(diagnostics, err.Error())
			cols = nil
			break
		}
	}

	// a computed column exists even if some rows fail to populate it
	headers := make([]string, 0, len(table.Headers)+len(cols))
	headers = append(headers, table.Headers...)

	for _, col := range cols {
		headers = append(headers, col.Name)
	}

	rows := make([]Row, len(table.Rows))

	for ri, row := range table.Rows {
		out := make(Row, len(row), len(row)+len(cols))
		copy(out, row)

		for _, col := range cols {
			v, err := col.eval(row)

			if err != nil {
				diagnostics = append(diagnostics,
					fmt.Sprintf("computed column %q row %d: %s", col.Name, ri, err))

				// blank fill, rendered as an empty cell
				out = append(out, nil)
				continue
			}

			out = append(out, v)
		}

		rows[ri] = out
	}

	log.Debug().Msgf("augmented %d rows with %d computed columns", len(rows), len(cols))

	return &Table{Headers: headers, Rows: rows}, diagnostics
}
