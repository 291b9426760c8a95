package main

import (
	"errors"
	"fmt"

	"github.com/antonybholmes/go-dna"
	"github.com/spf13/cobra"

	nearby "github.com/mcarras/go-nearby"
	"github.com/mcarras/go-nearby/config"
	"github.com/mcarras/go-nearby/report"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	location, err := dna.NewLocation(cfg.Query.Chrom, cfg.Query.Start, cfg.Query.End)

	if err != nil {
		return err
	}

	tdb, err := nearby.NewTranscriptDB(cfg.Conn.Database, cfg.Conn.DSN())

	if err != nil {
		return err
	}

	// the connection outlives both queries and is released no matter how
	// they end
	defer tdb.Close()

	fmt.Printf("closest %d upstream transcripts from %s:%d-%d in %s for refGene set\n",
		cfg.Query.Limit, cfg.Query.Chrom, cfg.Query.Start, cfg.Query.End, cfg.Conn.Database)
	fmt.Println("Note: for reverse - strand items, txEnd is the 5' end, the transcription start site")

	upstream, err := tdb.UpstreamTranscripts(location, cfg.Query.Limit)

	if err != nil {
		return fmt.Errorf("upstream query: %w", err)
	}

	var upstreamCols []report.ComputedColumn

	if cfg.Query.Distance {
		upstreamCols = append(upstreamCols, nearby.UpstreamDistanceColumn(cfg.Query.Start))
	}

	printReport(nearby.TranscriptTable(upstream), upstreamCols)

	fmt.Printf("\n\nclosest %d downstream transcripts from %s:%d-%d in %s for refGene set\n",
		cfg.Query.Limit, cfg.Query.Chrom, cfg.Query.Start, cfg.Query.End, cfg.Conn.Database)
	fmt.Println("Note: for reverse - strand items, txStart is the 3' end, NOT the transcription start site")

	downstream, err := tdb.DownstreamTranscripts(location, cfg.Query.Limit)

	if err != nil {
		return fmt.Errorf("downstream query: %w", err)
	}

	var downstreamCols []report.ComputedColumn

	if cfg.Query.Distance {
		downstreamCols = append(downstreamCols, nearby.DownstreamDistanceColumn(cfg.Query.End))
	}

	printReport(nearby.TranscriptTable(downstream), downstreamCols)

	return nil
}

// printReport augments and renders one table. Diagnostics are printed
// before the table and never abort it; an empty result prints a notice
// instead of a bare table.
func printReport(table *report.Table, cols []report.ComputedColumn) {
	augmented, diagnostics := report.Augment(table, cols)

	out, err := report.Render(augmented)

	if errors.Is(err, report.ErrEmptyResult) {
		fmt.Println("ERROR: Oops, we got an empty result. Are all your inputs correct?")
		return
	}

	for _, d := range diagnostics {
		fmt.Printf("WARNING: %s\n", d)
	}

	fmt.Println(out)
}
