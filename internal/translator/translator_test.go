package translator

import (
	"strings"
	"testing"

	"rosalind/internal/fasta"
	"rosalind/internal/translation"
)

func TestProtein(t *testing.T) {
	got := Protein("AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA", translation.Standard)
	if got != "MAMAPRTEINSTRING" {
		t.Fatalf("expected MAMAPRTEINSTRING, got %q", got)
	}
	if got := Protein("ATGNNNTGG", translation.Standard); got != "MXW" {
		t.Fatalf("expected MXW, got %q", got)
	}
}

func TestTranslateRecords(t *testing.T) {
	input := ">a\nATGAGATGA\n>b\nAT\n>c\nATGAGG\n"
	recs := FromFasta(fasta.ParseFasta(strings.NewReader(input)))
	if len(recs) != 3 || recs[2].Index != 2 || recs[2].Header != "c" {
		t.Fatalf("unexpected wrapped records: %+v", recs)
	}

	std := Translate(recs, nil)
	if len(std) != 2 {
		t.Fatalf("expected 2 translations, got %d: %v", len(std), std)
	}
	if std[0] != "MR" || std[2] != "MR" {
		t.Fatalf("unexpected standard translations: %v", std)
	}
	if _, ok := std[1]; ok {
		t.Fatalf("short record should be omitted")
	}

	mito := Translate(recs, translation.VertebrateMitochondrial)
	if mito[0] != "MW" || mito[2] != "M" {
		t.Fatalf("unexpected mitochondrial translations: %v", mito)
	}
}
