package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TrevorS/repsample"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by the root command's hooks.
type app struct {
	flags      options
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: defaultOptions()}

	cmd := &cobra.Command{
		Use:   "repsample",
		Short: "Distance-based downsampling of aligned sequences",
		Long: `repsample reduces a set of aligned sequences to at most --target
representatives using an IQ-TREE pairwise distance matrix.

The matrix is clustered once; the resulting dendrogram is cut at increasing
distance thresholds until every cluster's representatives fit the target.
Members of the --priority group are always kept; other clusters keep their
medoid.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	f := cmd.Flags()
	f.StringVar(&a.flags.Dist, "dist", "", "IQ-TREE .mldist distance matrix")
	f.StringVar(&a.flags.Meta, "meta", "", "two-column metadata file (sample_id group)")
	f.StringVar(&a.flags.Fasta, "fasta", "", "aligned FASTA holding the sequences listed in --dist")
	f.StringVar(&a.flags.Priority, "priority", a.flags.Priority, "group label whose members are always retained")
	f.IntVar(&a.flags.Target, "target", a.flags.Target, "maximum desired sample count")
	f.StringVar(&a.flags.Linkage, "linkage", a.flags.Linkage, "linkage strategy: single, complete, average, weighted or centroid")
	f.StringVar(&a.flags.OutputDir, "output-dir", "", "directory for outputs (defaults to the --dist directory)")
	f.StringVar(&a.flags.Prefix, "prefix", a.flags.Prefix, "prefix for generated files")
	f.BoolVar(&a.flags.WriteFasta, "write-fasta", false, "write a FASTA with the final selection")
	f.Float64Var(&a.flags.MaxThreshold, "max-threshold", 0, "height of the final fallback cut when above every distance (0 = matrix maximum)")
	f.StringVar(&a.flags.Separator, "separator", a.flags.Separator, "separator between base sample ID and suffix in sequence names")
	f.StringVar(&a.configPath, "config", "", "YAML file with defaults for any of the flags above")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every threshold trial")

	return cmd
}

// resolveOptions layers defaults, the config file and explicitly set flags.
func (a *app) resolveOptions(cmd *cobra.Command) (options, error) {
	opts := defaultOptions()
	if a.configPath != "" {
		if err := loadConfigFile(a.configPath, &opts); err != nil {
			return opts, err
		}
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("dist", func() { opts.Dist = a.flags.Dist })
	set("meta", func() { opts.Meta = a.flags.Meta })
	set("fasta", func() { opts.Fasta = a.flags.Fasta })
	set("priority", func() { opts.Priority = a.flags.Priority })
	set("target", func() { opts.Target = a.flags.Target })
	set("linkage", func() { opts.Linkage = a.flags.Linkage })
	set("output-dir", func() { opts.OutputDir = a.flags.OutputDir })
	set("prefix", func() { opts.Prefix = a.flags.Prefix })
	set("write-fasta", func() { opts.WriteFasta = a.flags.WriteFasta })
	set("max-threshold", func() { opts.MaxThreshold = a.flags.MaxThreshold })
	set("separator", func() { opts.Separator = a.flags.Separator })

	if opts.OutputDir == "" && opts.Dist != "" {
		opts.OutputDir = filepath.Dir(opts.Dist)
	}
	return opts, opts.validate()
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	opts, err := a.resolveOptions(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	m, groups, err := loadInputs(cmd.Context(), opts.Dist, opts.Meta)
	if err != nil {
		return err
	}
	a.logger.Debug("inputs loaded",
		zap.String("dist", opts.Dist),
		zap.Int("items", m.Len()),
		zap.Int("metadata_records", len(groups)),
	)

	required := repsample.ResolvePriority(m.Names(), groups, opts.Priority, opts.Separator)
	cfg := opts.libraryConfig()
	cfg.Logger = a.logger
	result, err := repsample.Downsample(m, required, cfg)
	if err != nil {
		return err
	}

	paths, err := writeOutputs(opts, result)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), result, opts.Priority, paths)
	return nil
}

// writeOutputs writes the ID list, the cluster report and, when requested,
// the FASTA subset.
func writeOutputs(opts options, r *repsample.Result) (outputPaths, error) {
	paths := outputPaths{
		IDs:      filepath.Join(opts.OutputDir, opts.Prefix+".ids.txt"),
		Clusters: filepath.Join(opts.OutputDir, opts.Prefix+".clusters.tsv"),
	}

	if err := writeFile(paths.IDs, func(f *os.File) error {
		return repsample.WriteIDs(f, r.Names)
	}); err != nil {
		return paths, err
	}
	if err := writeFile(paths.Clusters, func(f *os.File) error {
		return repsample.WriteClusterReport(f, r.Clusters)
	}); err != nil {
		return paths, err
	}

	if opts.WriteFasta {
		paths.FASTA = filepath.Join(opts.OutputDir, opts.Prefix+".fasta")
		in, err := os.Open(opts.Fasta)
		if err != nil {
			return paths, fmt.Errorf("opening FASTA: %w", err)
		}
		defer in.Close()
		if err := writeFile(paths.FASTA, func(f *os.File) error {
			_, err := repsample.WriteFastaSubset(in, f, r.Names)
			return err
		}); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// writeFile creates path, hands it to fill and closes it, reporting the
// first error.
func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
