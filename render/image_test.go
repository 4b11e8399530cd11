package render

import (
	"image/color"
	"testing"

	"github.com/bgiri25/mandelgrid"
)

func TestImageDimensions(t *testing.T) {
	p := mandelgrid.DefaultParams()
	p.Width, p.Height = 7, 4

	g, err := mandelgrid.ComputeGrid(p)
	if err != nil {
		t.Fatal(err)
	}
	img := Image(g, Gray)
	if b := img.Bounds(); b.Dx() != 7 || b.Dy() != 4 {
		t.Errorf("bounds %v, want 7x4", b)
	}
}

// Grid row 0 holds the Ymin samples and must land on the bottom pixel row.
// With y running from 2 down to 0 at x = -0.5, row 0 escapes immediately
// (black under Gray) and row 1 stays bounded (white).
func TestImageOriginLower(t *testing.T) {
	p := mandelgrid.Params{
		Region:  mandelgrid.Region{Xmin: -0.5, Xmax: -0.5, Ymin: 2, Ymax: 0},
		Width:   1,
		Height:  2,
		MaxIter: 80,
	}
	g, err := mandelgrid.ComputeGrid(p)
	if err != nil {
		t.Fatal(err)
	}

	img := Image(g, Gray)
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(0, 1); got != black {
		t.Errorf("bottom pixel = %+v, want black (grid row 0)", got)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("top pixel = %+v, want white (grid row 1)", got)
	}
}
