package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/brotli/go/cbrotli"
)

// Mismatch is the first line at which two traces differ.
type Mismatch struct {
	// Line is the 1-based line number.
	Line     int
	Expected string
	Actual   string
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("line %d:\n\texpected: %s\n\tactual:   %s", m.Line, m.Expected, m.Actual)
}

// Compare reads expected and actual line by line and returns the first
// Mismatch, or nil when every line of actual matches. The expected log
// may run on past the end of actual, as reference logs usually cover
// a complete test ROM; actual running past expected is a Mismatch.
func Compare(expected, actual io.Reader) (*Mismatch, error) {
	exp := bufio.NewScanner(expected)
	act := bufio.NewScanner(actual)
	for line := 1; act.Scan(); line++ {
		a := strings.TrimRight(act.Text(), "\r")
		if !exp.Scan() {
			if err := exp.Err(); err != nil {
				return nil, fmt.Errorf("trace: reading expected: %w", err)
			}
			return &Mismatch{Line: line, Actual: a}, nil
		}
		if e := strings.TrimRight(exp.Text(), "\r"); e != a {
			return &Mismatch{Line: line, Expected: e, Actual: a}, nil
		}
	}
	if err := act.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading actual: %w", err)
	}
	return nil, nil
}

// Open opens a trace written by Create, decompressing it if its name
// ends in .br.
func Open(name string) (io.ReadCloser, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	if !strings.HasSuffix(name, ".br") {
		return file, nil
	}
	return &brotliFile{Reader: cbrotli.NewReader(file), file: file}, nil
}

type brotliFile struct {
	*cbrotli.Reader
	file *os.File
}

func (b *brotliFile) Close() error {
	err := b.Reader.Close()
	if ferr := b.file.Close(); err == nil {
		err = ferr
	}
	return err
}
