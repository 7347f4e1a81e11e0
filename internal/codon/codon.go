package codon

import (
	"errors"
	"fmt"

	"rosalind/internal/nucleotide"
	"rosalind/internal/translation"
)

// ErrInvalidArity is returned when a codon is built from anything other than
// three nucleotides.
var ErrInvalidArity = errors.New("codon: invalid arity")

// Codon is an ordered triple of nucleotides.
type Codon [3]nucleotide.Nucleotide

// order gives each unambiguous base its digit in the translation index.
// Everything else is -1.
var order = func() (o [16]int) {
	for i := range o {
		o[i] = -1
	}
	o[nucleotide.T] = 0
	o[nucleotide.C] = 1
	o[nucleotide.A] = 2
	o[nucleotide.G] = 3
	return o
}()

// New builds a codon from exactly three nucleotides.
func New(ns ...nucleotide.Nucleotide) (Codon, error) {
	if len(ns) != 3 {
		return Codon{}, fmt.Errorf("%w: got %d nucleotides", ErrInvalidArity, len(ns))
	}
	return Codon{ns[0], ns[1], ns[2]}, nil
}

// FromString builds a codon from a three-character string using
// nucleotide.FromRune.
func FromString(s string) (Codon, error) {
	return New(nucleotide.Parse(s)...)
}

// Index returns the codon's position in a translation table: a base-4 number
// with digits T=0, C=1, A=2, G=3 and the first base most significant. It
// reports false if any base is ambiguous or a gap.
func (c Codon) Index() (int, bool) {
	idx := 0
	for _, n := range c {
		d := order[n.Bits()]
		if d < 0 {
			return 0, false
		}
		idx = idx*4 + d
	}
	return idx, true
}

// Translate looks the codon up in t. Codons without an index translate to
// translation.Unknown.
func (c Codon) Translate(t *translation.Table) translation.AminoAcid {
	idx, ok := c.Index()
	if !ok {
		return translation.Unknown
	}
	return t.Get(idx)
}

func (c Codon) String() string { return nucleotide.Format(c[:]) }

// Chunk splits s into consecutive codons. A trailing group of fewer than
// three characters is dropped.
func Chunk(s string) []Codon {
	ns := nucleotide.Parse(s)
	out := make([]Codon, 0, len(ns)/3)
	for i := 0; i+3 <= len(ns); i += 3 {
		out = append(out, Codon{ns[i], ns[i+1], ns[i+2]})
	}
	return out
}

// TranslateString translates every complete codon of s under t.
func TranslateString(s string, t *translation.Table) []translation.AminoAcid {
	codons := Chunk(s)
	out := make([]translation.AminoAcid, len(codons))
	for i, c := range codons {
		out[i] = c.Translate(t)
	}
	return out
}
