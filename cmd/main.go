package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"rosalind/internal/config"
	"rosalind/internal/fasta"
	"rosalind/internal/problems"
	"rosalind/internal/translation"
	"rosalind/internal/translator"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
	now func() time.Time
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	now := t.now
	if now == nil {
		now = time.Now
	}
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			// keep the partial line for the next write
			t.buf.Reset()
			t.buf.WriteString(line)
			break
		}
		ts := now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

// parseLevel maps a config log_level to a logger level. ok is false for
// unknown names, which fall back to info.
func parseLevel(s string) (level log.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}

// newLogger builds the process logger. The returned func closes the log file,
// if one was opened.
func newLogger(cfg *config.Config, verbose bool) (*log.Logger, func()) {
	var loggerOut io.Writer = os.Stderr
	var logFileHandle *os.File
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
			logFileHandle = f
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	tw := &timestampWriter{w: loggerOut}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	logger := log.New(termW)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		level, ok := parseLevel(cfg.LogLevel)
		logger.SetLevel(level)
		if !ok {
			logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
		}
	}
	if cfg.LogFile != "" && logFileHandle == nil {
		logger.Warn("log_file specified but could not be opened; logging to stderr only", "path", cfg.LogFile)
	}
	return logger, func() {
		if logFileHandle != nil {
			_ = logFileHandle.Close()
		}
	}
}

// env carries what every subcommand needs.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	stdout io.Writer
}

type command struct {
	name  string
	about string
	run   func(e *env, args []string) error
}

var commands = []command{
	{"dna", "Count nucleotide occurrence", runDNA},
	{"rna", "Transcribe DNA into RNA", runRNA},
	{"revc", "Reverse complement a DNA string", runRevc},
	{"fib", "Rabbit population recurrence", runFib},
	{"gc", "Identify the highest GC content record of a FASTA file", runGC},
	{"hamm", "Hamming distance between consecutive line pairs", runHamm},
	{"iprb", "Probability of a dominant phenotype", runIprb},
	{"prot", "Translate RNA into protein", runProt},
	{"translate", "Translate every record of a FASTA file", runTranslate},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: rosalind [-config path] [-verbose] <command> [flags] [INPUT]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.about)
	}
}

// errUsage marks argument errors.
var errUsage = errors.New("invalid usage")

// newFlagSet returns a subcommand flag set that reports errors instead of
// exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs parses args into fs and checks that every required flag was set.
func parseArgs(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w: %v", fs.Name(), errUsage, err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range required {
		if !set[name] {
			return fmt.Errorf("%s: %w: missing -%s", fs.Name(), errUsage, name)
		}
	}
	return nil
}

// inputPath returns the single positional INPUT argument after checking
// that it exists.
func inputPath(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: %w: expected one INPUT file", fs.Name(), errUsage)
	}
	path := fs.Arg(0)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// fastaPath is inputPath with the config's input_fasta as the fallback.
func fastaPath(e *env, fs *flag.FlagSet) (string, error) {
	if fs.NArg() == 0 && e.cfg.InputFasta != "" {
		if _, err := os.Stat(e.cfg.InputFasta); err != nil {
			return "", err
		}
		return e.cfg.InputFasta, nil
	}
	return inputPath(fs)
}

// readInput parses the flags of a single-file subcommand and returns the
// file contents with surrounding whitespace removed.
func readInput(name string, args []string) (string, error) {
	fs := newFlagSet(name)
	if err := parseArgs(fs, args); err != nil {
		return "", err
	}
	path, err := inputPath(fs)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func runDNA(e *env, args []string) error {
	s, err := readInput("dna", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, problems.FormatCounts(s, []rune("ACGT")))
	return nil
}

func runRNA(e *env, args []string) error {
	s, err := readInput("rna", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, problems.Transcribe(s))
	return nil
}

func runRevc(e *env, args []string) error {
	s, err := readInput("revc", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, problems.ReverseComplement(s))
	return nil
}

func runProt(e *env, args []string) error {
	s, err := readInput("prot", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, problems.Protein(s))
	return nil
}

func runFib(e *env, args []string) error {
	fs := newFlagSet("fib")
	generations := fs.Int("g", 0, "number of rabbit generations to simulate")
	fecundity := fs.Int("f", 0, "rabbit pairs produced per mature pair per generation")
	if err := parseArgs(fs, args, "g", "f"); err != nil {
		return err
	}
	n, err := problems.Rabbits(*generations, *fecundity)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, n)
	return nil
}

func runIprb(e *env, args []string) error {
	fs := newFlagSet("iprb")
	k := fs.Int("k", 0, "number of homozygous dominant individuals")
	m := fs.Int("m", 0, "number of heterozygous individuals")
	n := fs.Int("n", 0, "number of homozygous recessive individuals")
	if err := parseArgs(fs, args, "k", "m", "n"); err != nil {
		return err
	}
	p, err := problems.DominantProbability(*k, *m, *n)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, strconv.FormatFloat(p, 'f', -1, 64))
	return nil
}

func runHamm(e *env, args []string) error {
	fs := newFlagSet("hamm")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	path, err := inputPath(fs)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dists, err := problems.HammingPairs(f)
	if err != nil {
		return err
	}
	e.logger.Debug("hamming pairs", "path", path, "pairs", len(dists))
	for _, d := range dists {
		fmt.Fprintln(e.stdout, d)
	}
	return nil
}

func runGC(e *env, args []string) error {
	fs := newFlagSet("gc")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	path, err := fastaPath(e, fs)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	best, ok, err := problems.HighestGCSeq(fasta.NewReader(f).Records())
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !ok {
		e.logger.Warn("no fasta records found", "path", path)
		return nil
	}
	fmt.Fprintf(e.stdout, "%s\n%s\n", best.ID, strconv.FormatFloat(best.GCPercent()*100, 'f', -1, 64))
	return nil
}

func runTranslate(e *env, args []string) error {
	fs := newFlagSet("translate")
	tableName := fs.String("table", e.cfg.TranslationTable, "translation table ("+strings.Join(translation.Names(), ", ")+")")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	table, ok := translation.Lookup(*tableName)
	if !ok {
		return fmt.Errorf("translate: %w: unknown table %q", errUsage, *tableName)
	}
	path, err := fastaPath(e, fs)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	records, err := fasta.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	e.logger.Info("parsed fasta", "path", path, "records", len(records))

	proteins := translator.Translate(translator.FromFasta(records), table)
	indices := make([]int, 0, len(proteins))
	for i := range proteins {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	totalAA := 0
	for _, i := range indices {
		fmt.Fprintf(e.stdout, ">%s\n%s\n", records[i].ID, proteins[i])
		totalAA += len(proteins[i])
	}
	e.logger.Info("translation summary", "table", table.Name(), "translated", len(proteins), "skipped", len(records)-len(proteins), "total_aa", totalAA)
	return nil
}

func main() {
	configFlag := flag.String("config", "", "path to config.json (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		usage(os.Stderr)
		fmt.Fprintln(os.Stderr, "\nglobal flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Println("rosalind", version)
		return
	}

	// load config (optional file)
	cfg, cfgErr := config.LoadConfig(*configFlag)
	if cfgErr != nil {
		cfg = &config.Config{}
	}
	logger, closeLog := newLogger(cfg, *verbose)
	defer closeLog()
	if cfgErr != nil {
		logger.Fatal("failed to load config", "path", *configFlag, "err", cfgErr)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	cmd, ok := lookupCommand(name)
	if !ok {
		usage(os.Stderr)
		logger.Fatal("unknown command", "command", name)
	}
	logger.Debug("loaded config", "input_fasta", cfg.InputFasta, "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "translation_table", cfg.TranslationTable)

	start := time.Now()
	err := cmd.run(&env{cfg: cfg, logger: logger, stdout: os.Stdout}, flag.Args()[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
		}
		logger.Error("command failed", "command", name, "err", err)
		closeLog()
		os.Exit(1)
	}
	logger.Debug("command finished", "command", name, "duration_ms", time.Since(start).Milliseconds())
}
