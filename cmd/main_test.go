package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rosalind/internal/config"

	"github.com/charmbracelet/log"
)

func newTestEnv() (*env, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &env{cfg: &config.Config{}, logger: log.New(io.Discard), stdout: out}, out
}

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTimestampWriter(t *testing.T) {
	var out bytes.Buffer
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tw := &timestampWriter{w: &out, now: func() time.Time { return fixed }}
	if _, err := tw.Write([]byte("first line\nsecond ")); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write([]byte("half\n")); err != nil {
		t.Fatal(err)
	}
	want := "2024-01-02T03:04:05Z first line\n2024-01-02T03:04:05Z second half\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel, "": log.InfoLevel, "INFO": log.InfoLevel,
		"warning": log.WarnLevel, "error": log.ErrorLevel,
	}
	for in, want := range cases {
		if got, ok := parseLevel(in); !ok || got != want {
			t.Fatalf("parseLevel(%q): expected %v, got %v (ok=%v)", in, want, got, ok)
		}
	}
	if got, ok := parseLevel("loud"); ok || got != log.InfoLevel {
		t.Fatalf("unknown level should fall back to info")
	}
}

func TestSingleFileCommands(t *testing.T) {
	cases := []struct {
		cmd, input, want string
	}{
		{"dna", "AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC\n", "20 12 17 21\n"},
		{"rna", "GATGGAACTTGACTACGTAAATT\n", "GAUGGAACUUGACUACGUAAAUU\n"},
		{"revc", "AAAACCCGGT\n", "ACCGGGTTTT\n"},
		{"prot", "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA\n", "MAMAPRTEINSTRING\n"},
		{"hamm", "GAGCCTACTAACGGGAT\nCATCGTAATGACGGCCT\n", "7\n"},
	}
	for _, tc := range cases {
		e, out := newTestEnv()
		c, ok := lookupCommand(tc.cmd)
		if !ok {
			t.Fatalf("command %s not registered", tc.cmd)
		}
		if err := c.run(e, []string{writeInput(t, "input.txt", tc.input)}); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.cmd, err)
		}
		if out.String() != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.cmd, tc.want, out.String())
		}
	}
}

func TestFlagCommands(t *testing.T) {
	e, out := newTestEnv()
	if err := runFib(e, []string{"-g", "5", "-f", "3"}); err != nil {
		t.Fatalf("fib: %v", err)
	}
	if out.String() != "19\n" {
		t.Fatalf("fib: expected 19, got %q", out.String())
	}

	e, out = newTestEnv()
	if err := runIprb(e, []string{"-k", "2", "-m", "2", "-n", "2"}); err != nil {
		t.Fatalf("iprb: %v", err)
	}
	if !strings.HasPrefix(out.String(), "0.78333") {
		t.Fatalf("iprb: unexpected output %q", out.String())
	}

	e, _ = newTestEnv()
	if err := runFib(e, []string{"-g", "5"}); !errors.Is(err, errUsage) {
		t.Fatalf("fib without -f: expected usage error, got %v", err)
	}
}

func TestGCCommand(t *testing.T) {
	input := ">low\nAATT\n>high\nGGCA\n"
	e, out := newTestEnv()
	if err := runGC(e, []string{writeInput(t, "in.fasta", input)}); err != nil {
		t.Fatalf("gc: %v", err)
	}
	if out.String() != "high\n75\n" {
		t.Fatalf("gc: unexpected output %q", out.String())
	}

	e, _ = newTestEnv()
	err := runGC(e, []string{writeInput(t, "junk.fasta", "no header here\n")})
	if err == nil || !strings.Contains(err.Error(), "no valid record") {
		t.Fatalf("gc on junk: expected format error, got %v", err)
	}
}

func TestTranslateCommand(t *testing.T) {
	input := ">a\nATGAGATGA\n>b\nAT\n>c\nATGTGG\n"
	path := writeInput(t, "in.fasta", input)

	e, out := newTestEnv()
	if err := runTranslate(e, []string{path}); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if out.String() != ">a\nMR\n>c\nMW\n" {
		t.Fatalf("translate: unexpected output %q", out.String())
	}

	e, out = newTestEnv()
	if err := runTranslate(e, []string{"-table", "vertebrate-mitochondrial", path}); err != nil {
		t.Fatalf("translate: %v", err)
	}
	if out.String() != ">a\nMW\n>c\nMW\n" {
		t.Fatalf("translate mito: unexpected output %q", out.String())
	}

	e, _ = newTestEnv()
	if err := runTranslate(e, []string{"-table", "yeast", path}); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error for unknown table, got %v", err)
	}
}

func TestMissingInput(t *testing.T) {
	e, _ := newTestEnv()
	if err := runDNA(e, []string{filepath.Join(t.TempDir(), "missing.txt")}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if err := runDNA(e, nil); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestGCFallsBackToConfigInput(t *testing.T) {
	e, out := newTestEnv()
	e.cfg.InputFasta = writeInput(t, "cfg.fasta", ">only\nGC\n")
	if err := runGC(e, nil); err != nil {
		t.Fatalf("gc: %v", err)
	}
	if out.String() != "only\n100\n" {
		t.Fatalf("gc: unexpected output %q", out.String())
	}
}
