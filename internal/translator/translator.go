package translator

// Package translator turns nucleotide records into protein sequences using
// the in-process genetic code tables. It keeps translation out of the TUI and
// the CLI control flow.

import (
	"strings"

	"rosalind/internal/codon"
	"rosalind/internal/fasta"
	"rosalind/internal/translation"
)

// TranslatorRecord represents a single record to translate. Index should be
// the index in the caller's slice so results can be mapped back.
type TranslatorRecord struct {
	Index    int
	Header   string
	Sequence string
}

// FromFasta wraps parsed records, indexing them in input order.
func FromFasta(records []fasta.Record) []TranslatorRecord {
	out := make([]TranslatorRecord, len(records))
	for i, r := range records {
		out[i] = TranslatorRecord{Index: i, Header: r.ID, Sequence: r.Sequence}
	}
	return out
}

// Protein translates seq under table, reading U as T and dropping stop
// codons. Ambiguous codons come out as 'X'.
func Protein(seq string, table *translation.Table) string {
	var sb strings.Builder
	for _, aa := range codon.TranslateString(strings.Map(rnaToDNA, seq), table) {
		if aa == translation.Stop {
			continue
		}
		sb.WriteByte(aa.Byte())
	}
	return sb.String()
}

func rnaToDNA(r rune) rune {
	switch r {
	case 'U':
		return 'T'
	case 'u':
		return 't'
	}
	return r
}

// Translate translates each record's sequence. It returns a map from record
// Index to protein sequence. Records too short to hold a codon are left out.
//
// This function does not log; callers should log counts as desired.
func Translate(records []TranslatorRecord, table *translation.Table) map[int]string {
	if table == nil {
		table = translation.Standard
	}
	res := make(map[int]string, len(records))
	for _, r := range records {
		if len(r.Sequence) < 3 {
			continue
		}
		res[r.Index] = Protein(r.Sequence, table)
	}
	return res
}
