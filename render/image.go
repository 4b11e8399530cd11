package render

import (
	"image"

	"github.com/bgiri25/mandelgrid"
)

// Image renders g through cm into an RGBA image. Grid row 0 holds the Ymin
// samples and becomes the bottom pixel row, so the image has the usual
// mathematical orientation with the imaginary axis pointing up.
func Image(g *mandelgrid.Grid, cm Colormap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for row := 0; row < g.Height; row++ {
		py := g.Height - 1 - row
		for col := 0; col < g.Width; col++ {
			img.SetRGBA(col, py, cm(g.At(row, col), g.MaxIter))
		}
	}
	return img
}
