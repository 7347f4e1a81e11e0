package problems

import (
	"bufio"
	"io"
)

// Hamming counts the positions at which a and b differ. Only the common
// prefix length is compared.
func Hamming(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	d := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			d++
		}
	}
	return d
}

// HammingPairs reads lines two at a time and returns the distance of each
// pair. An unpaired final line is ignored.
func HammingPairs(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	var (
		out   []int
		first string
		have  bool
	)
	for sc.Scan() {
		if !have {
			first, have = sc.Text(), true
			continue
		}
		out = append(out, Hamming(first, sc.Text()))
		have = false
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}
