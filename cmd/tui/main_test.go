package main

import (
	"strings"
	"testing"

	"rosalind/internal/fasta"
	"rosalind/internal/translation"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) model {
	t.Helper()
	recs, err := fasta.ReadAll(strings.NewReader(">r1 first\nATGGCCTGA\n>r2\n" + strings.Repeat("ATG", 50) + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return newModel(buildRecords(recs, translation.Standard), translation.Standard)
}

func TestCycleMode(t *testing.T) {
	m := testModel(t)
	if m.currentMode != modeNucleotides {
		t.Fatalf("expected initial mode nucleotides, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeTranslated {
		t.Fatalf("expected translated, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeRevComp {
		t.Fatalf("expected reverse complement, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeNucleotides {
		t.Fatalf("expected nucleotides, got %v", m.currentMode)
	}
}

func TestBuildRecords(t *testing.T) {
	m := testModel(t)
	r := m.records[0]
	if r.ID != "r1" || r.Description != "first" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Translated != "MA" || r.RevComp != "TCAGGCCAT" || r.GCCount != 5 {
		t.Fatalf("unexpected derived views: %+v", r)
	}
}

func TestBuildRightLinesWrap(t *testing.T) {
	m := testModel(t)
	m.width = 120
	m.height = 40
	rec := m.records[1]
	lines := m.buildRightLines(rec)
	if len(lines) < 2 {
		t.Fatalf("expected wrapped lines, got %d", len(lines))
	}
	if strings.Join(lines, "") != rec.Nucleotides {
		t.Fatalf("wrapping lost sequence data")
	}
	for _, l := range lines {
		if len(l) > m.sequenceWidth() {
			t.Fatalf("line longer than panel: %d", len(l))
		}
	}

	m.currentMode = modeTranslated
	if got := strings.Join(m.buildRightLines(rec), ""); got != strings.Repeat("M", 50) {
		t.Fatalf("unexpected translated view %q", got)
	}
}

func TestModeKeys(t *testing.T) {
	var tm tea.Model = testModel(t)
	tm, _ = tm.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if got := tm.(model).currentMode; got != modeRevComp {
		t.Fatalf("expected reverse complement mode, got %v", got)
	}
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := tm.(model).currentMode; got != modeNucleotides {
		t.Fatalf("tab should wrap to nucleotides, got %v", got)
	}
	if view := tm.View(); !strings.Contains(view, "r1") {
		t.Fatalf("view should show the selected record")
	}
}
