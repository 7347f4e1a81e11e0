package problems

import (
	"errors"
	"fmt"
)

// ErrNegative is returned for negative generation or litter sizes.
var ErrNegative = errors.New("problems: negative argument")

// Rabbits returns the number of rabbit pairs after n generations when every
// mature pair produces k new pairs: F(0)=0, F(1)=1, F(i)=F(i-1)+k*F(i-2).
func Rabbits(n, k int) (uint64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrNegative, n, k)
	}
	prev, cur := uint64(0), uint64(1)
	for i := 0; i < n; i++ {
		prev, cur = cur, cur+prev*uint64(k)
	}
	return prev, nil
}
