package nearby

import (
	"database/sql"
	"fmt"

	"github.com/antonybholmes/go-dna"
	"github.com/antonybholmes/go-sys/log"

	_ "github.com/go-sql-driver/mysql"
)

type (
	TranscriptDB struct {
		db *sql.DB
		// database name, e.g. hg19
		name string
	}
)

const (
	// Partial conversion of a bash script from
	// http://genomewiki.ucsc.edu/index.php/Finding_nearby_genes.
	// Note: for reverse strand items, txEnd is the 5' end, the
	// transcription start site.
	UpstreamTranscriptsSql = `SELECT
		e.chrom,
		e.txStart,
		e.txEnd,
		e.strand,
		e.name,
		j.geneSymbol
		FROM refGene e, kgXref j
		WHERE e.name = j.refseq AND e.chrom = ? AND e.txEnd < ?
		ORDER BY e.txEnd DESC
		LIMIT ?`

	// Note: for reverse strand items, txStart is the 3' end, NOT the
	// transcription start site.
	DownstreamTranscriptsSql = `SELECT
		e.chrom,
		e.txStart,
		e.txEnd,
		e.strand,
		e.name,
		j.geneSymbol
		FROM refGene e, kgXref j
		WHERE e.name = j.refseq AND e.chrom = ? AND e.txStart > ?
		ORDER BY e.txStart ASC
		LIMIT ?`

	MaxTranscriptResults uint16 = 1000
)

func NewTranscriptDB(name string, dsn string) (*TranscriptDB, error) {
	log.Debug().Msgf("opening transcript database %s", name)

	db, err := sql.Open("mysql", dsn)

	if err != nil {
		return nil, fmt.Errorf("unable to open transcript database %s: %w", name, err)
	}

	return &TranscriptDB{name: name, db: db}, nil
}

func (tdb *TranscriptDB) Name() string {
	return tdb.name
}

func (tdb *TranscriptDB) Close() error {
	return tdb.db.Close()
}

// UpstreamTranscripts returns the closest transcripts ending before the
// reference start, nearest first (the query's ORDER BY order).
func (tdb *TranscriptDB) UpstreamTranscripts(location *dna.Location, limit uint16) ([]*Transcript, error) {
	limit = max(1, min(limit, MaxTranscriptResults))

	rows, err := tdb.db.Query(UpstreamTranscriptsSql,
		location.Chr(),
		location.Start(),
		limit)

	if err != nil {
		log.Error().Msgf("error querying upstream transcripts %s", err)
		return nil, err
	}

	defer rows.Close()

	return rowsToTranscripts(rows, int(location.Start()), true)
}

// DownstreamTranscripts returns the closest transcripts starting after the
// reference end, nearest first.
func (tdb *TranscriptDB) DownstreamTranscripts(location *dna.Location, limit uint16) ([]*Transcript, error) {
	limit = max(1, min(limit, MaxTranscriptResults))

	rows, err := tdb.db.Query(DownstreamTranscriptsSql,
		location.Chr(),
		location.End(),
		limit)

	if err != nil {
		log.Error().Msgf("error querying downstream transcripts %s", err)
		return nil, err
	}

	defer rows.Close()

	return rowsToTranscripts(rows, int(location.End()), false)
}

func rowsToTranscripts(rows *sql.Rows, ref int, upstream bool) ([]*Transcript, error) {

	// 10 seems a reasonable guess for the number of transcripts we might
	// see, just to reduce slice reallocation
	ret := make([]*Transcript, 0, 10)

	for rows.Next() {
		var t Transcript

		err := rows.Scan(&t.Chrom,
			&t.TxStart,
			&t.TxEnd,
			&t.Strand,
			&t.Name,
			&t.GeneSymbol)

		if err != nil {
			log.Error().Msgf("error reading transcript rows %s", err)
			return nil, err
		}

		if upstream {
			t.Dist = ref - t.TxEnd
		} else {
			t.Dist = t.TxStart - ref
		}

		ret = append(ret, &t)
	}

	log.Debug().Msgf("converted rows to %d transcripts", len(ret))

	return ret, nil
}
