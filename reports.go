package nearby

import (
	"fmt"

	"github.com/mcarras/go-nearby/report"
)

// The original genomewiki script names its distance column after the
// expression it evaluates, e.g. "991973-txEnd". Keep that convention so
// reports read the same.

// UpstreamDistanceColumn derives the distance from the reference start to
// each upstream transcript's txEnd.
func UpstreamDistanceColumn(ref int) report.ComputedColumn {
	return report.ComputedColumn{
		Name:  fmt.Sprintf("%d-txEnd", ref),
		Left:  report.Lit(float64(ref)),
		Op:    report.Sub,
		Right: report.Col(TxEndCol),
	}
}

// DownstreamDistanceColumn derives the distance from each downstream
// transcript's txStart to the reference end.
func DownstreamDistanceColumn(ref int) report.ComputedColumn {
	return report.ComputedColumn{
		Name:  fmt.Sprintf("txStart-%d", ref),
		Left:  report.Col(TxStartCol),
		Op:    report.Sub,
		Right: report.Lit(float64(ref)),
	}
}
