package repsample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single physical line of a matrix file.
const maxLineBytes = 64 << 20

// lineReader wraps a bufio.Scanner and tracks the 1-based physical line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{sc: sc}
}

// next returns the next physical line. ok is false at end of input.
func (lr *lineReader) next() (text string, ok bool, err error) {
	if !lr.sc.Scan() {
		return "", false, lr.sc.Err()
	}
	lr.line++
	return lr.sc.Text(), true, nil
}

// ReadMatrix parses a square distance matrix in the PHYLIP-like layout written
// by IQ-TREE (.mldist): a first line holding the item count n, then n rows,
// each a name followed by n distances. A row's distances may wrap across
// several physical lines. source names the input in error messages.
func ReadMatrix(r io.Reader, source string) (*DistanceMatrix, error) {
	lr := newLineReader(r)

	first, ok, err := lr.next()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if !ok {
		return nil, &FormatError{Source: source, Msg: "appears to be empty"}
	}
	header := strings.TrimSpace(first)
	n, err := strconv.Atoi(header)
	if err != nil {
		return nil, &FormatError{Source: source, Line: lr.line, Msg: fmt.Sprintf("header %q is not an item count", header)}
	}
	if n < 1 {
		return nil, &FormatError{Source: source, Line: lr.line, Msg: fmt.Sprintf("item count must be positive, got %d", n)}
	}

	names := make([]string, 0, n)
	values := make([]float64, n*n)

	for i := 0; i < n; i++ {
		text, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		if !ok {
			return nil, &FormatError{
				Source: source,
				Msg:    fmt.Sprintf("ended prematurely: expected %d rows, got %d", n, i),
			}
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			return nil, &FormatError{Source: source, Line: lr.line, Msg: fmt.Sprintf("blank line at row %d", i+1)}
		}
		name := fields[0]
		row := values[i*n : (i+1)*n]
		k, err := fillRow(row, fields[1:], 0, source, lr.line, name)
		if err != nil {
			return nil, err
		}
		for k < n {
			extra, ok, err := lr.next()
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", source, err)
			}
			if !ok {
				return nil, &FormatError{
					Source: source,
					Msg:    fmt.Sprintf("could not gather %d distances for row %q: got %d", n, name, k),
				}
			}
			k, err = fillRow(row, strings.Fields(extra), k, source, lr.line, name)
			if err != nil {
				return nil, err
			}
		}
		names = append(names, name)
	}

	// Only blank lines may follow the last row.
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		if !ok {
			break
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return nil, &FormatError{
				Source: source,
				Line:   lr.line,
				Msg:    fmt.Sprintf("declared %d rows but found extra row %q", n, fields[0]),
			}
		}
	}

	m, err := NewDistanceMatrix(names, values)
	if err != nil {
		return nil, withSource(err, source)
	}
	return m, nil
}

// fillRow parses tokens into row starting at offset k and returns the new
// offset. Tokens past the end of the row are ignored.
func fillRow(row []float64, tokens []string, k int, source string, line int, name string) (int, error) {
	for _, tok := range tokens {
		if k == len(row) {
			break
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return k, &FormatError{
				Source: source,
				Line:   line,
				Msg:    fmt.Sprintf("row %q: distance %q is not a number", name, tok),
			}
		}
		row[k] = v
		k++
	}
	return k, nil
}

// withSource rewrites the Source of a FormatError or DataError produced by
// NewDistanceMatrix so it names the file that was read.
func withSource(err error, source string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Source = source
		return fe
	}
	var de *DataError
	if errors.As(err, &de) {
		de.Source = source
		return de
	}
	return err
}
