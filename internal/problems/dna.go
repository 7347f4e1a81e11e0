package problems

import (
	"strconv"
	"strings"
)

// CountNucleotides counts every rune in s.
func CountNucleotides(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}

// FormatCounts renders the counts of bases in s, space separated, in the order
// given. Bases that do not occur count as 0.
func FormatCounts(s string, bases []rune) string {
	freq := CountNucleotides(s)
	parts := make([]string, len(bases))
	for i, b := range bases {
		parts[i] = strconv.Itoa(freq[b])
	}
	return strings.Join(parts, " ")
}
