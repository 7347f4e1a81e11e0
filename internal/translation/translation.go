package translation

// Package translation holds the genetic code tables used to turn codons into
// amino acids. Tables are indexed by a codon's translation index (see package
// codon), which orders each position T, C, A, G as in the NCBI tables.

import (
	"errors"
	"fmt"
	"strings"
)

// AminoAcid is a translated codon: one of the 20 standard residues, Unknown
// or Stop.
type AminoAcid uint8

const (
	Unknown AminoAcid = iota // X, any amino acid
	Ala
	Cys
	Asp
	Glu
	Phe
	Gly
	His
	Ile
	Lys
	Leu
	Met
	Asn
	Pro
	Gln
	Arg
	Ser
	Thr
	Val
	Trp
	Tyr
	Stop // terminator
)

var letters = [...]byte{
	Unknown: 'X', Ala: 'A', Cys: 'C', Asp: 'D', Glu: 'E', Phe: 'F', Gly: 'G',
	His: 'H', Ile: 'I', Lys: 'K', Leu: 'L', Met: 'M', Asn: 'N', Pro: 'P',
	Gln: 'Q', Arg: 'R', Ser: 'S', Thr: 'T', Val: 'V', Trp: 'W', Tyr: 'Y',
	Stop: '*',
}

var names = [...]string{
	Unknown: "Xaa", Ala: "Ala", Cys: "Cys", Asp: "Asp", Glu: "Glu", Phe: "Phe",
	Gly: "Gly", His: "His", Ile: "Ile", Lys: "Lys", Leu: "Leu", Met: "Met",
	Asn: "Asn", Pro: "Pro", Gln: "Gln", Arg: "Arg", Ser: "Ser", Thr: "Thr",
	Val: "Val", Trp: "Trp", Tyr: "Tyr", Stop: "Ter",
}

var fromLetter = func() (t [256]AminoAcid) {
	for aa, c := range letters {
		t[c] = AminoAcid(aa)
	}
	return t
}()

// FromByte maps a one-letter code (or '*' for stop) to its amino acid.
// Lower case and unrecognised letters give Unknown.
func FromByte(c byte) AminoAcid { return fromLetter[c] }

// Byte returns the one-letter code.
func (a AminoAcid) Byte() byte {
	if int(a) >= len(letters) {
		return 'X'
	}
	return letters[a]
}

func (a AminoAcid) String() string { return string(a.Byte()) }

// Name returns the three-letter code ("Ter" for stop).
func (a AminoAcid) Name() string {
	if int(a) >= len(names) {
		return names[Unknown]
	}
	return names[a]
}

// Size is the number of codons covered by a table.
const Size = 64

// ErrTableLength is returned by ParseTable for a code string that is not
// exactly Size letters long.
var ErrTableLength = errors.New("translation: table must have 64 entries")

// Table maps codon translation indices to amino acids. The zero value
// translates everything to Unknown.
type Table struct {
	name string
	aa   [Size]AminoAcid
}

// NewTable builds a table from 64 one-letter codes. Unrecognised codes become
// Unknown.
func NewTable(name string, codes [Size]byte) *Table {
	t := &Table{name: name}
	for i, c := range codes {
		t.aa[i] = FromByte(c)
	}
	return t
}

// ParseTable builds a table from a string in the layout of the NCBI "AAs"
// row, e.g. "FFLLSSSSYY**CC*W...".
func ParseTable(name, codes string) (*Table, error) {
	if len(codes) != Size {
		return nil, fmt.Errorf("%w: %q has %d", ErrTableLength, name, len(codes))
	}
	var b [Size]byte
	copy(b[:], codes)
	return NewTable(name, b), nil
}

func mustParse(name, codes string) *Table {
	t, err := ParseTable(name, codes)
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns the amino acid at index i, or Unknown when i is outside
// [0, 64).
func (t *Table) Get(i int) AminoAcid {
	if t == nil || i < 0 || i >= Size {
		return Unknown
	}
	return t.aa[i]
}

func (t *Table) Name() string { return t.name }

// String renders the table in NCBI "AAs" layout.
func (t *Table) String() string {
	var sb strings.Builder
	for _, aa := range t.aa {
		sb.WriteByte(aa.Byte())
	}
	return sb.String()
}

var (
	// Standard is NCBI translation table 1.
	Standard = mustParse("standard",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG")

	// VertebrateMitochondrial is NCBI translation table 2. It differs from
	// Standard at TGA (Trp), ATA (Met) and AGA/AGG (Stop).
	VertebrateMitochondrial = mustParse("vertebrate-mitochondrial",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG")
)

var byName = map[string]*Table{
	"standard":                 Standard,
	"1":                        Standard,
	"vertebrate-mitochondrial": VertebrateMitochondrial,
	"vertebrate_mitochondrial": VertebrateMitochondrial,
	"2":                        VertebrateMitochondrial,
}

// Lookup resolves a table by name or NCBI number. The empty name is Standard.
func Lookup(name string) (*Table, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Standard, true
	}
	t, ok := byName[name]
	return t, ok
}

// Names lists the canonical table names.
func Names() []string {
	return []string{Standard.name, VertebrateMitochondrial.name}
}
