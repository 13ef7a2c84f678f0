package repsample

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Config controls downsampling behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Target is the maximum number of items to retain. Priority items are
	// always retained, so the realized count can exceed Target when a
	// cluster holds several of them. Must be >= 1. Default: 500.
	Target int

	// Linkage is the hierarchical clustering strategy. Default: average.
	Linkage Linkage

	// MaxThreshold lifts the search's final fallback height when it lies
	// above every observed distance. Every distinct distance is tried
	// regardless. 0 means no bound. Must be >= 0. Default: +Inf (no bound).
	MaxThreshold float64

	// Logger receives per-trial debug lines and the final outcome.
	// Default: a no-op logger.
	Logger *zap.Logger
}

// Result is the outcome of a downsampling run.
type Result struct {
	// Names are the retained item names in input order.
	Names []string

	// Indices are the retained item positions in input order.
	Indices []int

	// Clusters holds one record per cluster of the chosen cut, ordered by ID.
	Clusters []ClusterRecord

	// Threshold is the chosen cut height.
	Threshold float64

	// Total is the number of input items.
	Total int

	// PriorityCount is the number of items that had to be retained.
	PriorityCount int

	// Target echoes Config.Target.
	Target int

	// Trials is the number of distinct partitions evaluated.
	Trials int

	// Overflow is set when the retained count exceeds Target. This happens
	// only when priority items crowd clusters or no candidate height fit.
	Overflow bool
}

// Selected returns the number of retained items.
func (r *Result) Selected() int { return len(r.Indices) }

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Target:       500,
		Linkage:      LinkageAverage,
		MaxThreshold: math.Inf(1),
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Target < 1 {
		return fmt.Errorf("repsample: Target must be >= 1, got %d", cfg.Target)
	}
	if _, err := updateFor(cfg.Linkage); err != nil {
		return err
	}
	if math.IsNaN(cfg.MaxThreshold) || cfg.MaxThreshold < 0 {
		return fmt.Errorf("repsample: MaxThreshold must be >= 0, got %f", cfg.MaxThreshold)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Linkage == "" {
		cfg.Linkage = LinkageAverage
	}
	if cfg.MaxThreshold == 0 {
		cfg.MaxThreshold = math.Inf(1)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// Downsample picks at most cfg.Target representatives from m while keeping
// every item flagged in required. It clusters m once, then cuts the
// dendrogram at increasing heights and returns the first cut whose
// selection fits the target.
//
// Returns an *InfeasibleConstraintError, before any clustering, when the
// required items alone exceed the target, and a *DataError when the matrix
// holds NaN distances.
func Downsample(m *DistanceMatrix, required []bool, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := m.Len()
	if len(required) != n {
		return nil, fmt.Errorf("repsample: required length %d does not match matrix size %d", len(required), n)
	}

	priority := countRequired(required)
	if priority > cfg.Target {
		return nil, &InfeasibleConstraintError{Priority: priority, Target: cfg.Target}
	}

	condensed := m.Condensed()
	d, err := BuildDendrogram(condensed, n, cfg.Linkage, cfg.Logger)
	if err != nil {
		return nil, err
	}

	candidates := CandidateThresholds(condensed, cfg.MaxThreshold)
	out := searchThreshold(d, m, required, cfg.Target, candidates, cfg.Logger)

	names := make([]string, len(out.selection.Indices))
	for i, idx := range out.selection.Indices {
		names[i] = m.Name(idx)
	}

	r := &Result{
		Names:         names,
		Indices:       out.selection.Indices,
		Clusters:      out.selection.Clusters,
		Threshold:     out.height,
		Total:         n,
		PriorityCount: priority,
		Target:        cfg.Target,
		Trials:        out.trials,
		Overflow:      out.selection.Len() > cfg.Target,
	}

	if !out.feasible {
		cfg.Logger.Warn("no threshold met the target; using the most permissive cut",
			zap.Float64("threshold", r.Threshold),
			zap.Int("selected", r.Selected()),
			zap.Int("target", r.Target),
		)
	}
	cfg.Logger.Info("threshold chosen",
		zap.String("linkage", string(cfg.Linkage)),
		zap.Float64("threshold", r.Threshold),
		zap.Int("selected", r.Selected()),
		zap.Int("trials", r.Trials),
	)

	return r, nil
}
