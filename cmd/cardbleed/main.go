package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ironsheep/cardbleed/internal/bleed"
	"github.com/ironsheep/cardbleed/internal/pipeline"
)

// Version information - set by ldflags during build
var Version = "dev"

func newRootCmd() *cobra.Command {
	var (
		width        float64
		height       float64
		bleedWidth   float64
		bleedHeight  float64
		cropStrategy string
		dpi          int
		strip        []string
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "cardbleed [flags] input_file output_directory",
		Short: "Add a mirrored print bleed to card images",
		Long: `cardbleed extends a card image (or each page of a PDF) outward with
mirrored copies of itself, then crops to the requested physical size.
One PNG is written per page, alternating front/back.`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := bleed.ParseCropStrategy(cropStrategy)
			if err != nil {
				return err
			}

			edges := make([]bleed.Edge, 0, len(strip))
			for _, s := range strip {
				e, err := bleed.ParseEdge(s)
				if err != nil {
					return err
				}
				edges = append(edges, e)
			}

			logger, err := newLogger(quiet)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cmd.SilenceUsage = true
			return pipeline.New(logger.Sugar()).Run(pipeline.Options{
				Width:        width,
				Height:       height,
				BleedWidth:   bleedWidth,
				BleedHeight:  bleedHeight,
				CropStrategy: strategy,
				DPI:          dpi,
				Strip:        edges,
				InputFile:    args[0],
				OutputDir:    args[1],
			})
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "physical width of the source card")
	cmd.Flags().Float64Var(&height, "height", 0, "physical height of the source card")
	cmd.Flags().Float64Var(&bleedWidth, "bleed_width", 0, "physical width of the output, between 1x and 3x --width")
	cmd.Flags().Float64Var(&bleedHeight, "bleed_height", 0, "physical height of the output, between 1x and 3x --height")
	cmd.Flags().StringVar(&cropStrategy, "crop_strategy", "smaller", "density used to convert bleed size to pixels: smaller or larger")
	cmd.Flags().IntVar(&dpi, "dpi", 300, "rendering resolution for PDF inputs")
	cmd.Flags().StringArrayVar(&strip, "strip", nil, "strip one pixel from this edge before adding bleed (repeatable; top, bottom, left, right)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")

	for _, f := range []string{"width", "height", "bleed_width", "bleed_height"} {
		cobra.CheckErr(cmd.MarkFlagRequired(f))
	}

	return cmd
}

func newLogger(quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
