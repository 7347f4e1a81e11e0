package problems

import (
	"errors"
	"fmt"
)

// ErrPopulation is returned when fewer than two organisms are available to
// mate.
var ErrPopulation = errors.New("problems: population must have at least two organisms")

// DominantProbability returns the probability that two organisms drawn at
// random from a population of k homozygous dominant, m heterozygous and n
// homozygous recessive individuals produce offspring with the dominant
// phenotype.
func DominantProbability(k, m, n int) (float64, error) {
	if k < 0 || m < 0 || n < 0 {
		return 0, fmt.Errorf("%w: k=%d m=%d n=%d", ErrNegative, k, m, n)
	}
	total := k + m + n
	if total < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrPopulation, total)
	}
	// Ordered pairs, weighted by the four equally likely allele combinations.
	pairs := 4 * total * (total - 1)

	domDom := k * (k - 1)
	domHet := 2 * k * m
	domRec := 2 * k * n
	hetHet := m * (m - 1)
	hetRec := 2 * m * n

	dominant := 4*domDom + 4*domHet + 4*domRec + 3*hetHet + 2*hetRec
	return float64(dominant) / float64(pairs), nil
}
