package repsample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix holds the pairwise distances between n named items.
// Item order is the order in which the names were supplied and is preserved
// by every derived view. Only the upper triangle of the input is stored;
// the matrix is symmetric by construction.
type DistanceMatrix struct {
	names []string
	index map[string]int
	sym   *mat.SymDense
}

// NewDistanceMatrix builds a DistanceMatrix from item names and a flat
// row-major n×n slice where values[i*n+j] is the distance between items i
// and j. Returns a *FormatError for shape problems or duplicate names and a
// *DataError for NaN or negative entries.
func NewDistanceMatrix(names []string, values []float64) (*DistanceMatrix, error) {
	n := len(names)
	if n == 0 {
		return nil, &FormatError{Source: "matrix", Msg: "no items"}
	}
	if len(values) != n*n {
		return nil, &FormatError{
			Source: "matrix",
			Msg:    fmt.Sprintf("values length %d does not match n*n = %d (n=%d)", len(values), n*n, n),
		}
	}

	index := make(map[string]int, n)
	for i, name := range names {
		if prev, ok := index[name]; ok {
			return nil, &FormatError{
				Source: "matrix",
				Msg:    fmt.Sprintf("duplicate name %q at rows %d and %d", name, prev+1, i+1),
			}
		}
		index[name] = i
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := values[i*n+j]
			if math.IsNaN(v) {
				return nil, &DataError{
					Source: "matrix",
					Msg:    fmt.Sprintf("NaN distance between %q and %q", names[i], names[j]),
				}
			}
			if v < 0 {
				return nil, &DataError{
					Source: "matrix",
					Msg:    fmt.Sprintf("negative distance %g between %q and %q", v, names[i], names[j]),
				}
			}
		}
	}

	data := make([]float64, n*n)
	copy(data, values)
	own := make([]string, n)
	copy(own, names)

	return &DistanceMatrix{
		names: own,
		index: index,
		sym:   mat.NewSymDense(n, data),
	}, nil
}

// Len returns the number of items.
func (m *DistanceMatrix) Len() int { return len(m.names) }

// Names returns a copy of the item names in input order.
func (m *DistanceMatrix) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Name returns the name of item i.
func (m *DistanceMatrix) Name(i int) string { return m.names[i] }

// Index returns the position of name in input order.
func (m *DistanceMatrix) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// At returns the distance between items i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Condensed returns the upper triangle (excluding the diagonal) as a flat
// slice of length n*(n-1)/2, row by row. Entry (i, j) with i < j lives at
// condensedIndex(n, i, j).
func (m *DistanceMatrix) Condensed() []float64 {
	n := m.Len()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.sym.At(i, j))
		}
	}
	return out
}

// condensedIndex maps the pair (i, j), i != j, to its offset in a condensed
// distance vector over n items.
func condensedIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return n*i - i*(i+1)/2 + (j - i - 1)
}
