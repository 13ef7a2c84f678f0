package repsample

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// helper: sum all MST edge weights.
func totalMSTWeight(edges []edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.w
	}
	return total
}

func TestPrimMST_FourPointKnownMST(t *testing.T) {
	// Distance matrix:
	//      0  1  3  4
	//      1  0  2  5
	//      3  2  0  1
	//      4  5  1  0
	// From node 0: nearest is 1 (1). Through 1, node 2 drops to 2, node 3
	// stays 4 → add 2 (2). Through 2, node 3 drops to 1 → add 3 (1).
	dist := condensedOf([][]float64{
		{0, 1, 3, 4},
		{1, 0, 2, 5},
		{3, 2, 0, 1},
		{4, 5, 1, 0},
	})

	edges := PrimMST(dist, 4, zap.NewNop())

	want := []edge{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}}
	if len(edges) != len(want) {
		t.Fatalf("expected %d edges, got %d", len(want), len(edges))
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edge[%d] = %+v, want %+v", i, edges[i], want[i])
		}
	}
	if math.Abs(totalMSTWeight(edges)-4.0) > 1e-10 {
		t.Errorf("expected total MST weight 4.0, got %f", totalMSTWeight(edges))
	}
}

func TestPrimMST_InfEdgeLogsWarning(t *testing.T) {
	inf := math.Inf(1)
	dist := condensedOf([][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	})

	core, logs := observer.New(zapcore.WarnLevel)
	edges := PrimMST(dist, 3, zap.New(core))

	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if !math.IsInf(edges[1].w, 1) {
		t.Errorf("expected second edge to be +Inf, got %v", edges[1].w)
	}
	if logs.Len() != 1 {
		t.Errorf("expected 1 warning, got %d", logs.Len())
	}
}

func TestPrimMST_SinglePoint(t *testing.T) {
	if edges := PrimMST(nil, 1, zap.NewNop()); edges != nil {
		t.Errorf("expected nil for n=1, got %v", edges)
	}
}

func TestPrimMST_TwoPoints(t *testing.T) {
	edges := PrimMST([]float64{7.5}, 2, zap.NewNop())
	if len(edges) != 1 || edges[0] != (edge{0, 1, 7.5}) {
		t.Errorf("expected [{0 1 7.5}], got %+v", edges)
	}
}

func TestPrimMST_NilLogger(t *testing.T) {
	inf := math.Inf(1)
	// Must not panic without a logger.
	PrimMST([]float64{inf}, 2, nil)
}
