package report

import (
	"errors"
	"fmt"
	"strconv"
)

//
// Computed columns are binary arithmetic expressions evaluated per row,
// e.g. the distance between a reference point and a transcript's txEnd.
// Operands are tagged as either a literal or a column reference so a
// numeric literal can never be mistaken for an index.
//

type (
	// Row is an ordered, fixed-width sequence of scalar values positionally
	// matching a header list.
	Row []any

	// Table is a batch of rows plus the headers describing them.
	Table struct {
		Headers []string `json:"headers"`
		Rows    []Row    `json:"rows"`
	}

	Operand struct {
		value  float64
		column int
		isRef  bool
	}

	Operator string

	// ComputedColumn describes one derived column: name, left operand,
	// operator, right operand.
	ComputedColumn struct {
		Name  string
		Left  Operand
		Op    Operator
		Right Operand
	}
)

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

var ErrDivisionByZero = errors.New("division by zero")

// Lit makes a literal operand.
func Lit(v float64) Operand {
	return Operand{value: v}
}

// Col makes an operand referencing a column index within the same row.
func Col(index int) Operand {
	return Operand{column: index, isRef: true}
}

func (o Operand) String() string {
	if o.isRef {
		return fmt.Sprintf("col(%d)", o.column)
	}

	return strconv.FormatFloat(o.value, 'f', -1, 64)
}

// resolve returns the numeric value of an operand against a row. Column
// references must be in [0, len(row)) and point at a numeric cell.
func (o Operand) resolve(row Row) (float64, error) {
	if !o.isRef {
		return o.value, nil
	}

	if o.column < 0 || o.column >= len(row) {
		return 0, fmt.Errorf("column %d out of range for row of width %d", o.column, len(row))
	}

	v, ok := toFloat(row[o.column])

	if !ok {
		return 0, fmt.Errorf("column %d is not numeric (%v)", o.column, row[o.column])
	}

	return v, nil
}

func (op Operator) valid() bool {
	switch op {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

func (op Operator) apply(a float64, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return a / b, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", string(op))
	}
}

// validate checks the shape of a spec once, before any row is processed.
func (col *ComputedColumn) validate() error {
	if col.Name == "" {
		return errors.New("computed column must have a name")
	}

	if !col.Op.valid() {
		return fmt.Errorf("computed column %q has unknown operator %q", col.Name, string(col.Op))
	}

	for _, o := range []Operand{col.Left, col.Right} {
		if o.isRef && o.column < 0 {
			return fmt.Errorf("computed column %q references negative column %d", col.Name, o.column)
		}
	}

	return nil
}

func (col *ComputedColumn) eval(row Row) (float64, error) {
	left, err := col.Left.resolve(row)

	if err != nil {
		return 0, err
	}

	right, err := col.Right.resolve(row)

	if err != nil {
		return 0, err
	}

	return col.Op.apply(left, right)
}

// toFloat coerces the scalar cell types a sql driver hands back. MySQL
// integer columns arrive as int64 or []byte depending on scan target.
func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
