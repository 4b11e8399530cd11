package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgiri25/mandelgrid"
	"github.com/bgiri25/mandelgrid/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Compute a grid and save it as a PNG image",
		PreRunE: bindFlags,
		RunE:    runRender,
	}
	addGridFlags(cmd)
	cmd.Flags().String("out", "mandelbrot.png", "output PNG file")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	p, err := gridParams(cmd)
	if err != nil {
		return err
	}
	cm, err := render.ByName(viper.GetString("cmap"))
	if err != nil {
		return err
	}

	log.Printf("computing %dx%d grid (max %d iterations)", p.Width, p.Height, p.MaxIter)
	start := time.Now()
	grid, err := mandelgrid.ComputeGridParallel(cmd.Context(), p, viper.GetInt("workers"))
	if err != nil {
		return err
	}
	log.Printf("computation took %s, max iteration in grid: %d", time.Since(start).Round(time.Millisecond), grid.Max())

	out := viper.GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, render.Image(grid, cm)); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("image saved to %q", out)
	return nil
}
