package main

import (
	"fmt"
	"os"

	"github.com/TrevorS/repsample"
	"gopkg.in/yaml.v3"
)

// options holds every run parameter. It is filled from defaults, then an
// optional YAML file, then flags explicitly set on the command line.
type options struct {
	Dist         string  `yaml:"dist"`
	Meta         string  `yaml:"meta"`
	Fasta        string  `yaml:"fasta"`
	Priority     string  `yaml:"priority"`
	Target       int     `yaml:"target"`
	Linkage      string  `yaml:"linkage"`
	OutputDir    string  `yaml:"output_dir"`
	Prefix       string  `yaml:"prefix"`
	WriteFasta   bool    `yaml:"write_fasta"`
	MaxThreshold float64 `yaml:"max_threshold"`
	Separator    string  `yaml:"separator"`
}

func defaultOptions() options {
	cfg := repsample.DefaultConfig()
	return options{
		Priority:  repsample.DefaultPriorityLabel,
		Target:    cfg.Target,
		Linkage:   string(cfg.Linkage),
		Prefix:    "downsampled",
		Separator: repsample.DefaultSeparator,
	}
}

// loadConfigFile overlays the YAML file at path onto opts. Keys absent from
// the file keep their current values.
func loadConfigFile(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parsing YAML %s: %w", path, err)
	}
	return nil
}

// validate checks that opts describe a runnable job.
func (o *options) validate() error {
	if o.Dist == "" {
		return fmt.Errorf("--dist is required")
	}
	if o.Meta == "" {
		return fmt.Errorf("--meta is required")
	}
	if o.WriteFasta && o.Fasta == "" {
		return fmt.Errorf("--write-fasta requires --fasta")
	}
	if o.Target < 1 {
		return fmt.Errorf("--target must be >= 1, got %d", o.Target)
	}
	if o.MaxThreshold < 0 {
		return fmt.Errorf("--max-threshold must be >= 0, got %g", o.MaxThreshold)
	}
	if _, err := repsample.ParseLinkage(o.Linkage); err != nil {
		return err
	}
	return nil
}

// libraryConfig converts opts into a repsample.Config.
func (o *options) libraryConfig() repsample.Config {
	cfg := repsample.DefaultConfig()
	cfg.Target = o.Target
	cfg.Linkage = repsample.Linkage(o.Linkage)
	if o.MaxThreshold > 0 {
		cfg.MaxThreshold = o.MaxThreshold
	}
	return cfg
}
