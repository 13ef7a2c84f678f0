package repsample

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// fastaWidth is the line width of written sequences.
const fastaWidth = 60

// WriteFastaSubset copies the records of an aligned FASTA stream whose IDs
// are listed in keep, in stream order. It returns the number of records
// written and fails if that differs from the number of distinct names in keep.
func WriteFastaSubset(r io.Reader, w io.Writer, keep []string) (int, error) {
	want := make(map[string]struct{}, len(keep))
	for _, name := range keep {
		want[name] = struct{}{}
	}

	template := linear.NewSeq("", nil, alphabet.DNAgapped)
	sc := seqio.NewScanner(fasta.NewReader(r, template))
	fw := fasta.NewWriter(w, fastaWidth)

	written := 0
	for sc.Next() {
		s := sc.Seq()
		if _, ok := want[s.Name()]; !ok {
			continue
		}
		if _, err := fw.Write(s); err != nil {
			return written, fmt.Errorf("writing %q: %w", s.Name(), err)
		}
		written++
	}
	if err := sc.Error(); err != nil {
		return written, fmt.Errorf("reading FASTA: %w", err)
	}
	if written != len(want) {
		return written, fmt.Errorf("repsample: expected to write %d sequences, but wrote %d", len(want), written)
	}
	return written, nil
}
