// Command wfc is a thin CLI collaborator: it decodes an input texture,
// runs wfc.Generate, and optionally writes the result. None of this is
// part of the core; image I/O and flag parsing live here so the library
// stays a pure function of (image, config, rng).
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder for image.Decode
	"image/png"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/wfcgen/wfc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	output  string
	size    int
	width   int
	height  int
	seed    int64
	hasSeed bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "wfc <texture>",
		Short: "Synthesize a texture from an exemplar using Wave Function Collapse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output texture path (optional)")
	cmd.Flags().IntVarP(&f.size, "size", "s", 2, "pattern kernel size")
	cmd.Flags().IntVar(&f.width, "width", 10, "output width")
	cmd.Flags().IntVar(&f.height, "height", 10, "output height")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for deterministic output (optional)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		f.hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func run(cmd *cobra.Command, texturePath string, f *flags) error {
	img, err := decodeImage(texturePath)
	if err != nil {
		return fmt.Errorf("%w: %v", wfc.ErrImageIO, err)
	}

	var rng wfc.Rand
	if f.hasSeed {
		rng = wfc.NewSeededRand(uint64(f.seed))
	} else {
		rng = wfc.NewGoRand()
	}

	cfg := wfc.Config{PatternSize: f.size, Width: f.width, Height: f.height}
	out, err := wfc.Generate(context.Background(), img, cfg, rng)
	if err != nil {
		return err
	}

	if f.output == "" {
		log.Printf("generated %dx%d image from %s (no --output given, discarding result)", f.width, f.height, texturePath)
		return nil
	}

	if err := encodeImage(f.output, out); err != nil {
		return fmt.Errorf("%w: %v", wfc.ErrImageIO, err)
	}
	log.Printf("wrote %s", f.output)
	return nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func encodeImage(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
