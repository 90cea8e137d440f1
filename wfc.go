package wfc

import (
	"context"
	"image"
)

// Config holds the pattern kernel size and the output raster's
// dimensions.
type Config struct {
	PatternSize int
	Width       int
	Height      int
}

func (cfg Config) validateOutput() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return &OutputSizeError{Width: cfg.Width, Height: cfg.Height}
	}
	return nil
}

// Generate runs the full pipeline: extract patterns from img under
// cfg.PatternSize, build the constraints table, then repeatedly observe
// and propagate until every output cell is collapsed, rendering the
// result. A contradiction aborts immediately with ErrContradiction; there
// is no retry or backtracking.
//
// ctx is checked once at entry only. The core loop performs no blocking
// operations, so there is nothing useful to cancel mid-run.
func Generate(ctx context.Context, img image.Image, cfg Config, rng Rand) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.validateOutput(); err != nil {
		return nil, err
	}

	patterns, err := ExtractPatterns(img, cfg.PatternSize)
	if err != nil {
		return nil, err
	}

	constraints := BuildConstraints(patterns)
	grid := NewEntropyGrid(cfg.Width, cfg.Height, len(patterns))

	for {
		idx, ok := Observe(&grid, rng)
		if !ok {
			break
		}
		if err := Propagate(&grid, constraints, idx); err != nil {
			return nil, err
		}
	}

	return Render(&grid, patterns), nil
}
