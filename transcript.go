package nearby

import (
	"github.com/mcarras/go-nearby/report"
)

// Positional columns of a transcript row, matching TranscriptHeaders and
// the select order of the upstream/downstream queries.
const (
	ChromCol      int = 0
	TxStartCol    int = 1
	TxEndCol      int = 2
	StrandCol     int = 3
	NameCol       int = 4
	GeneSymbolCol int = 5
)

type (
	// A Transcript is one refGene record joined with its kgXref gene symbol.
	Transcript struct {
		Chrom      string `json:"chrom"`
		TxStart    int    `json:"txStart"`
		TxEnd      int    `json:"txEnd"`
		Strand     string `json:"strand"`
		Name       string `json:"name"`
		GeneSymbol string `json:"geneSymbol"`
		// signed distance from the reference point to the transcript edge
		// nearest it
		Dist int `json:"dist"`
	}
)

var TranscriptHeaders = []string{"chrom", "txStart", "txEnd", "strand", "name", "geneSymbol"}

// ReportRow converts a transcript into a positional row matching
// TranscriptHeaders.
func (t *Transcript) ReportRow() report.Row {
	return report.Row{t.Chrom, t.TxStart, t.TxEnd, t.Strand, t.Name, t.GeneSymbol}
}

// TranscriptTable makes a report table from transcripts, preserving their
// order.
func TranscriptTable(transcripts []*Transcript) *report.Table {
	rows := make([]report.Row, len(transcripts))

	for i, t := range transcripts {
		rows[i] = t.ReportRow()
	}

	return &report.Table{Headers: TranscriptHeaders, Rows: rows}
}
