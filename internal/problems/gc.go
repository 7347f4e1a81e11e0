package problems

import (
	"iter"

	"rosalind/internal/fasta"
)

// HighestGC returns the record with the highest GC content. A later record
// replaces the current best unless the best is strictly higher, so ties and
// NaN percentages go to the later record. ok is false for no records.
func HighestGC(records []fasta.Record) (best fasta.Record, ok bool) {
	for _, r := range records {
		if !ok || !(best.GCPercent() > r.GCPercent()) {
			best, ok = r, true
		}
	}
	return best, ok
}

// HighestGCSeq is HighestGC over a record stream. It stops at the first error.
func HighestGCSeq(records iter.Seq2[*fasta.Record, error]) (best fasta.Record, ok bool, err error) {
	for r, err := range records {
		if err != nil {
			return best, ok, err
		}
		if !ok || !(best.GCPercent() > r.GCPercent()) {
			best, ok = *r, true
		}
	}
	return best, ok, nil
}
