package problems

import "github.com/TimothyStiles/poly/transform"

// ReverseComplement returns the reverse complement of a DNA string.
func ReverseComplement(s string) string {
	return transform.ReverseComplement(s)
}
