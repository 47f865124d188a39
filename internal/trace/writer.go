package trace

import (
	"bufio"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/sm83/internal/cpu"
)

// Writer is a cpu.Tracer writing a line per instruction. It keeps a
// running checksum of everything written, so that two runs can be
// compared without keeping their logs.
type Writer struct {
	format Format
	buf    *bufio.Writer
	sum    hash.Hash64
	lines  int
	err    error

	closers []io.Closer
}

var _ cpu.Tracer = (*Writer)(nil)

// NewWriter returns a Writer rendering to w.
func NewWriter(w io.Writer, f Format) *Writer {
	sum := xxhash.New()
	return &Writer{
		format: f,
		buf:    bufio.NewWriter(io.MultiWriter(w, sum)),
		sum:    sum,
	}
}

// Create creates the named file and returns a Writer to it. Names
// ending in .br are brotli compressed; the checksum is always of the
// uncompressed text.
func Create(name string, f Format) (*Writer, error) {
	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	if !strings.HasSuffix(name, ".br") {
		w := NewWriter(file, f)
		w.closers = []io.Closer{file}
		return w, nil
	}
	br := cbrotli.NewWriter(file, cbrotli.WriterOptions{Quality: 7})
	w := NewWriter(br, f)
	w.closers = []io.Closer{br, file}
	return w, nil
}

// Trace implements cpu.Tracer. Write errors are kept and reported
// by Err and Close.
func (w *Writer) Trace(r cpu.Result) {
	if w.err != nil {
		return
	}
	if _, err := w.buf.WriteString(Line(w.format, r) + "\n"); err != nil {
		w.err = fmt.Errorf("trace: %w", err)
		return
	}
	w.lines++
}

// Lines returns the number of lines written.
func (w *Writer) Lines() int {
	return w.lines
}

// Sum returns the checksum of the lines written so far.
func (w *Writer) Sum() uint64 {
	if err := w.buf.Flush(); err != nil && w.err == nil {
		w.err = fmt.Errorf("trace: %w", err)
	}
	return w.sum.Sum64()
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered lines.
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil && w.err == nil {
		w.err = fmt.Errorf("trace: %w", err)
	}
	return w.err
}

// Close flushes the Writer and closes the file opened by Create.
func (w *Writer) Close() error {
	err := w.Flush()
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("trace: %w", cerr)
		}
	}
	w.closers = nil
	return err
}
