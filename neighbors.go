package nearby

import (
	"github.com/antonybholmes/go-basemath"
	"github.com/antonybholmes/go-dna"
)

type (
	// NearbyTranscripts is the structured result of the two directional
	// queries around a reference point.
	NearbyTranscripts struct {
		Location   *dna.Location `json:"loc"`
		Upstream   []*Transcript `json:"upstream"`
		Downstream []*Transcript `json:"downstream"`
		Closest    *Transcript   `json:"closest,omitempty"`
	}
)

// NearbyTranscripts runs the upstream and downstream queries for a
// reference point and picks the single closest transcript by absolute
// distance across both directions.
func (tdb *TranscriptDB) NearbyTranscripts(location *dna.Location, limit uint16) (*NearbyTranscripts, error) {
	upstream, err := tdb.UpstreamTranscripts(location, limit)

	if err != nil {
		return nil, err
	}

	downstream, err := tdb.DownstreamTranscripts(location, limit)

	if err != nil {
		return nil, err
	}

	ret := &NearbyTranscripts{Location: location,
		Upstream:   upstream,
		Downstream: downstream,
		Closest:    closestTranscript(upstream, downstream)}

	return ret, nil
}

func closestTranscript(lists ...[]*Transcript) *Transcript {
	var closest *Transcript

	for _, transcripts := range lists {
		for _, t := range transcripts {
			if closest == nil || basemath.AbsInt(t.Dist) < basemath.AbsInt(closest.Dist) {
				closest = t
			}
		}
	}

	return closest
}
