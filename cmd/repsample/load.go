package main

import (
	"context"
	"fmt"
	"os"

	"github.com/TrevorS/repsample"
	"golang.org/x/sync/errgroup"
)

// loadInputs reads the distance matrix and the metadata file concurrently.
// A reader that has not started yet is skipped once ctx is done or the other
// reader has failed.
func loadInputs(ctx context.Context, distPath, metaPath string) (*repsample.DistanceMatrix, map[string]string, error) {
	g, gctx := errgroup.WithContext(ctx)

	var m *repsample.DistanceMatrix
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		f, err := os.Open(distPath)
		if err != nil {
			return fmt.Errorf("opening distance matrix: %w", err)
		}
		defer f.Close()
		m, err = repsample.ReadMatrix(f, distPath)
		return err
	})

	var groups map[string]string
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		f, err := os.Open(metaPath)
		if err != nil {
			return fmt.Errorf("opening metadata: %w", err)
		}
		defer f.Close()
		groups, err = repsample.ReadGroups(f, metaPath)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return m, groups, nil
}
