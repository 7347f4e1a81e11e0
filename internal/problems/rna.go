package problems

import "strings"

// Transcribe replaces thymine with uracil, keeping case. Everything else is
// left alone.
func Transcribe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'T':
			return 'U'
		case 't':
			return 'u'
		}
		return r
	}, s)
}
