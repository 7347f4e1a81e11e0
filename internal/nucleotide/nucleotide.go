package nucleotide

// Package nucleotide implements a four-bit DNA alphabet with IUPAC ambiguity
// codes. Each value is a set of bases packed as G A C T bits, so ambiguity
// codes are the union of the bases they stand for and set operations are
// plain bitwise operations.

// Nucleotide is one of the 16 IUPAC symbols. The underlying value is the bit
// pattern; only the low four bits are ever set.
type Nucleotide uint8

//	  G A C T
const (
	Gap Nucleotide = 0b0000 // no base
	T   Nucleotide = 0b0001
	C   Nucleotide = 0b0010
	Y   Nucleotide = 0b0011 // C or T
	A   Nucleotide = 0b0100
	W   Nucleotide = 0b0101 // A or T
	M   Nucleotide = 0b0110 // A or C
	H   Nucleotide = 0b0111 // not G
	G   Nucleotide = 0b1000
	K   Nucleotide = 0b1001 // G or T
	S   Nucleotide = 0b1010 // G or C
	B   Nucleotide = 0b1011 // not A
	R   Nucleotide = 0b1100 // G or A
	D   Nucleotide = 0b1101 // not C
	V   Nucleotide = 0b1110 // not T
	N   Nucleotide = 0b1111 // any base
)

const mask = 0b1111

// symbols is indexed by bit pattern.
const symbols = "-TCYAWMHGKSBRDVN"

// All lists every symbol in bit pattern order.
var All = [16]Nucleotide{Gap, T, C, Y, A, W, M, H, G, K, S, B, R, D, V, N}

// FromBits decodes the low four bits of b. Every byte decodes to exactly one
// symbol.
func FromBits(b byte) Nucleotide {
	return All[b&mask]
}

// FromChar maps A, C, G and T (either case) to the matching base. Anything
// else, IUPAC letters included, becomes N.
func FromChar(c byte) Nucleotide {
	switch c {
	case 'A', 'a':
		return A
	case 'C', 'c':
		return C
	case 'G', 'g':
		return G
	case 'T', 't':
		return T
	}
	return N
}

// FromRune is FromChar for runes; anything outside ASCII becomes N.
func FromRune(r rune) Nucleotide {
	if r < 0 || r > 0x7f {
		return N
	}
	return FromChar(byte(r))
}

// Bits returns the four-bit pattern.
func (n Nucleotide) Bits() byte { return byte(n) & mask }

func (n Nucleotide) And(o Nucleotide) Nucleotide { return FromBits(n.Bits() & o.Bits()) }

func (n Nucleotide) Or(o Nucleotide) Nucleotide { return FromBits(n.Bits() | o.Bits()) }

func (n Nucleotide) Xor(o Nucleotide) Nucleotide { return FromBits(n.Bits() ^ o.Bits()) }

// Complement swaps the A/T bit pair with the G/C bit pair by rotating the
// pattern two places. For unambiguous bases this is Watson-Crick pairing.
func (n Nucleotide) Complement() Nucleotide {
	b := n.Bits()
	return FromBits(b<<2 | b>>2)
}

// IsAmbiguous reports whether n stands for more than one base.
func (n Nucleotide) IsAmbiguous() bool {
	b := n.Bits()
	return b&(b-1) != 0
}

func (n Nucleotide) IsGap() bool { return n.Bits() == 0 }

// Byte returns the IUPAC letter, '-' for a gap.
func (n Nucleotide) Byte() byte { return symbols[n.Bits()] }

func (n Nucleotide) String() string { return string(n.Byte()) }

// Parse decodes s rune by rune with FromRune.
func Parse(s string) []Nucleotide {
	out := make([]Nucleotide, 0, len(s))
	for _, r := range s {
		out = append(out, FromRune(r))
	}
	return out
}

// Format renders ns as IUPAC letters.
func Format(ns []Nucleotide) string {
	buf := make([]byte, len(ns))
	for i, n := range ns {
		buf[i] = n.Byte()
	}
	return string(buf)
}

// ReverseComplement parses s, complements it and reverses it. Characters
// other than ACGT come back as N.
func ReverseComplement(s string) string {
	ns := Parse(s)
	out := make([]byte, len(ns))
	for i, n := range ns {
		out[len(ns)-1-i] = n.Complement().Byte()
	}
	return string(out)
}
