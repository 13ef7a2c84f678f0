package repsample

import (
	"math"
	"testing"
)

func checkMerges(t *testing.T, got, want []Merge) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d merges, got %d", len(want), len(got))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Left != w.Left || g.Right != w.Right || g.Size != w.Size || math.Abs(g.Height-w.Height) > 1e-10 {
			t.Errorf("merge[%d] = %+v, want %+v", i, g, w)
		}
	}
}

func TestLabel_FourPointMST(t *testing.T) {
	// Edges sorted by weight: [0,2,1], [2,3,1], [0,1,2]
	//
	// Step 0: find(0)=0, find(2)=2          → {0, 2, 1, 2}, new node 4
	// Step 1: find(2)=4, find(3)=3, swap    → {3, 4, 1, 3}, new node 5
	// Step 2: find(0)=5, find(1)=1, swap    → {1, 5, 2, 4}, new node 6
	edges := []edge{
		{0, 2, 1.0},
		{2, 3, 1.0},
		{0, 1, 2.0},
	}

	checkMerges(t, Label(edges, 4), []Merge{
		{0, 2, 1.0, 2},
		{3, 4, 1.0, 3},
		{1, 5, 2.0, 4},
	})
}

func TestLabel_NoEdges(t *testing.T) {
	if got := Label(nil, 1); len(got) != 0 {
		t.Fatalf("expected 0 merges for n=1, got %d", len(got))
	}
}

func TestLabel_TwoPoints(t *testing.T) {
	checkMerges(t, Label([]edge{{1, 0, 3.5}}, 2), []Merge{
		{0, 1, 3.5, 2},
	})
}

func TestLabel_SortsEdgesByWeight(t *testing.T) {
	// After sort: [1,2,1] then [0,1,5]
	// Step 0: {1, 2, 1, 2} → node 3
	// Step 1: find(0)=0, find(1)=3 → {0, 3, 5, 3}
	edges := []edge{
		{0, 1, 5.0},
		{1, 2, 1.0},
	}
	checkMerges(t, Label(edges, 3), []Merge{
		{1, 2, 1.0, 2},
		{0, 3, 5.0, 3},
	})
}

func TestLabel_StableForEqualWeights(t *testing.T) {
	edges := []edge{
		{2, 3, 1.0},
		{0, 1, 1.0},
		{0, 2, 1.0},
	}
	checkMerges(t, Label(edges, 4), []Merge{
		{2, 3, 1.0, 2},
		{0, 1, 1.0, 2},
		{4, 5, 1.0, 4},
	})
}

func TestLabel_DoesNotModifyInput(t *testing.T) {
	edges := []edge{{0, 1, 5.0}, {1, 2, 1.0}}
	Label(edges, 3)
	if edges[0].w != 5.0 || edges[1].w != 1.0 {
		t.Errorf("Label reordered its input: %+v", edges)
	}
}

func TestRelabel_KeepsGivenOrder(t *testing.T) {
	// A height inversion survives relabel: the second merge is lower.
	edges := []edge{
		{0, 1, 3.0},
		{1, 2, 1.0},
	}
	checkMerges(t, relabel(edges, 3), []Merge{
		{0, 1, 3.0, 2},
		{2, 3, 1.0, 3},
	})
}
