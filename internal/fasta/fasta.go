package fasta

// Package fasta reads FASTA formatted data one record at a time. Parsing is
// deliberately forgiving: junk before the first header is skipped and
// sequence lines are concatenated as-is.

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// ErrNoRecord is returned when the input has content but no header line.
var ErrNoRecord = errors.New("fasta: no valid record found")

// Record represents a single FASTA record.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// GCCount counts the upper case C and G bases in the sequence.
func (r Record) GCCount() int {
	n := 0
	for i := 0; i < len(r.Sequence); i++ {
		if c := r.Sequence[i]; c == 'C' || c == 'G' {
			n++
		}
	}
	return n
}

// GCPercent is GCCount divided by the sequence length, as a fraction. An
// empty sequence gives NaN.
func (r Record) GCPercent() float64 {
	return float64(r.GCCount()) / float64(len(r.Sequence))
}

func (r Record) Len() int { return len(r.Sequence) }

type state int

const (
	seeking state = iota
	inRecord
	done
)

// Reader reads records from FASTA input. It is not safe for concurrent use.
type Reader struct {
	buf   *bufio.Reader
	state state
	// header holds a header line read while finishing the previous record.
	header string
	err    error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// readLine returns the next line without its trailing CR/LF. ok is false at
// the end of input.
func (r *Reader) readLine() (line string, ok bool, err error) {
	line, err = r.buf.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Read returns the next record. It returns io.EOF once the input is
// exhausted, ErrNoRecord if the input had content but never a header, and
// any error from the underlying reader. Errors are sticky.
func (r *Reader) Read() (*Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.state == seeking {
		if err := r.seek(); err != nil {
			return nil, r.fail(err)
		}
	}
	if r.state == done {
		return nil, io.EOF
	}

	rec := newRecord(r.header)
	r.header = ""
	var seq strings.Builder
	for {
		line, ok, err := r.readLine()
		if err != nil {
			return nil, r.fail(err)
		}
		if !ok {
			r.state = done
			break
		}
		if strings.HasPrefix(line, ">") {
			r.header = line
			break
		}
		seq.WriteString(line)
	}
	rec.Sequence = seq.String()
	return rec, nil
}

// seek skips lines up to the first header.
func (r *Reader) seek() error {
	junk := false
	for {
		line, ok, err := r.readLine()
		if err != nil {
			return err
		}
		if !ok {
			r.state = done
			if junk {
				return ErrNoRecord
			}
			return nil
		}
		if strings.HasPrefix(line, ">") {
			r.header = line
			r.state = inRecord
			return nil
		}
		if strings.TrimSpace(line) != "" {
			junk = true
		}
	}
}

func (r *Reader) fail(err error) error {
	r.state = done
	r.err = err
	return err
}

func newRecord(header string) *Record {
	fields := strings.Fields(header[1:])
	rec := &Record{}
	if len(fields) == 0 {
		return rec
	}
	rec.ID = fields[0]
	rest := strings.TrimSpace(header[1:])
	rec.Description = strings.TrimSpace(rest[len(fields[0]):])
	return rec
}

// Records iterates over the remaining records. Iteration stops after the first
// error, which is yielded with a nil record.
func (r *Reader) Records() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		for {
			rec, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	var records []Record
	for rec, err := range NewReader(r).Records() {
		if err != nil {
			return records, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// ParseFasta reads FASTA records from r and returns those read before any
// error.
func ParseFasta(r io.Reader) []Record {
	records, _ := ReadAll(r)
	return records
}
