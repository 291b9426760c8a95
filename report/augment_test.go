package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcarras/go-nearby/report"
)

func testTable() *report.Table {
	return &report.Table{
		Headers: []string{"chrom", "txStart", "txEnd", "strand", "name", "geneSymbol"},
		Rows: []report.Row{
			{"chr1", 991000, 991500, "+", "NM_001", "GENEX"},
			{"chr1", 990000, 990800, "-", "NM_002", "GENEY"},
		},
	}
}

func TestAugmentNoColumns(t *testing.T) {
	table := testTable()

	augmented, diagnostics := report.Augment(table, nil)

	assert.Empty(t, diagnostics)
	assert.Equal(t, table.Headers, augmented.Headers)
	assert.Equal(t, table.Rows, augmented.Rows)
}

func TestAugmentLiteralOnly(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Name: "d", Left: report.Lit(10), Op: report.Sub, Right: report.Lit(3)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	assert.Empty(t, diagnostics)
	assert.Equal(t, append(testTable().Headers, "d"), augmented.Headers)

	// literal-only specs evaluate to the same value for every row
	for _, row := range augmented.Rows {
		assert.Equal(t, float64(7), row[len(row)-1])
	}
}

func TestAugmentColumnIdentity(t *testing.T) {
	table := testTable()

	// col - 0 reproduces the referenced column
	cols := []report.ComputedColumn{
		{Name: "txEndAgain", Left: report.Col(2), Op: report.Sub, Right: report.Lit(0)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	assert.Empty(t, diagnostics)

	for ri, row := range augmented.Rows {
		assert.Equal(t, float64(table.Rows[ri][2].(int)), row[len(row)-1])
	}
}

func TestAugmentDistance(t *testing.T) {
	table := &report.Table{
		Headers: []string{"chrom", "txStart", "txEnd", "strand", "name", "geneSymbol"},
		Rows: []report.Row{
			{"chr1", 991000, 991500, "+", "NM_001", "GENEX"},
		},
	}

	cols := []report.ComputedColumn{
		{Name: "991973-txEnd", Left: report.Lit(991973), Op: report.Sub, Right: report.Col(2)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	require.Empty(t, diagnostics)
	require.Len(t, augmented.Rows, 1)

	assert.Equal(t,
		[]string{"chrom", "txStart", "txEnd", "strand", "name", "geneSymbol", "991973-txEnd"},
		augmented.Headers)
	assert.Equal(t, float64(473), augmented.Rows[0][6])
}

func TestAugmentDivisionByZero(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Name: "bad", Left: report.Col(1), Op: report.Div, Right: report.Lit(0)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	// a diagnostic per row, the column still exists and every row is kept
	require.Len(t, diagnostics, len(table.Rows))

	for _, d := range diagnostics {
		assert.Contains(t, d, "division by zero")
	}

	assert.Equal(t, append(testTable().Headers, "bad"), augmented.Headers)
	require.Len(t, augmented.Rows, len(table.Rows))

	for _, row := range augmented.Rows {
		assert.Nil(t, row[len(row)-1])
	}
}

func TestAugmentOutOfRangeReference(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Name: "bad", Left: report.Col(99), Op: report.Sub, Right: report.Lit(0)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	require.Len(t, diagnostics, len(table.Rows))
	assert.Contains(t, diagnostics[0], "out of range")

	// rows are still included, the computed cell is blank
	require.Len(t, augmented.Rows, len(table.Rows))

	for _, row := range augmented.Rows {
		assert.Len(t, row, 7)
		assert.Nil(t, row[6])
	}
}

func TestAugmentNonNumericOperand(t *testing.T) {
	table := testTable()

	// strand is not numeric
	cols := []report.ComputedColumn{
		{Name: "bad", Left: report.Col(3), Op: report.Add, Right: report.Lit(1)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	require.Len(t, diagnostics, len(table.Rows))
	assert.Contains(t, diagnostics[0], "not numeric")

	for _, row := range augmented.Rows {
		assert.Nil(t, row[len(row)-1])
	}
}

func TestAugmentMalformedSpec(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Name: "ok", Left: report.Lit(1), Op: report.Add, Right: report.Lit(1)},
		{Name: "bad", Left: report.Lit(1), Op: report.Operator("%"), Right: report.Lit(1)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	// a malformed spec disables computed columns for the whole call but
	// the original rows still come back
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "unknown operator")

	assert.Equal(t, testTable().Headers, augmented.Headers)
	assert.Equal(t, testTable().Rows, augmented.Rows)
}

func TestAugmentNegativeReference(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Name: "bad", Left: report.Col(-1), Op: report.Sub, Right: report.Lit(0)},
	}

	augmented, diagnostics := report.Augment(table, cols)

	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "negative column")
	assert.Equal(t, testTable().Headers, augmented.Headers)
}

func TestAugmentUnnamedSpec(t *testing.T) {
	table := testTable()

	cols := []report.ComputedColumn{
		{Left: report.Lit(1), Op: report.Add, Right: report.Lit(1)},
	}

	_, diagnostics := report.Augment(table, cols)

	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "must have a name")
}

func TestAugmentEmptyRows(t *testing.T) {
	table := &report.Table{Headers: []string{"a", "b"}}

	augmented, diagnostics := report.Augment(table, nil)

	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "empty result")
	assert.Empty(t, augmented.Rows)
}

func TestAugmentHeaderMismatch(t *testing.T) {
	table := &report.Table{
		Headers: []string{"a", "b"},
		Rows: []report.Row{
			{1, 2, 3},
			{4, 5, 6},
		},
	}

	_, diagnostics := report.Augment(table, nil)

	// the mismatch is reported once, not per row
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "headers")
}
