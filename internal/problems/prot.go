package problems

import (
	"strings"

	"rosalind/internal/translation"
	"rosalind/internal/translator"
)

// Protein translates an RNA (or DNA) string under the standard table,
// dropping stop codons. Characters other than ACGTU become N and translate
// as part of an unknown codon.
func Protein(rna string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case 'U', 'u', 'T', 't':
			return 'T'
		case 'A', 'a':
			return 'A'
		case 'G', 'g':
			return 'G'
		case 'C', 'c':
			return 'C'
		}
		return 'N'
	}, rna)
	return translator.Protein(cleaned, translation.Standard)
}
