// Package render turns iteration grids into images. It is a deliberately
// separate collaborator: it only reads the grid, so the escape-time core
// stays free of any presentation concern.
package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/bgiri25/mandelgrid"
)

// Colormap maps an iteration count in [0, maxIter] to a color.
type Colormap func(n, maxIter int) color.RGBA

var colormapsByName = map[string]Colormap{
	"hot":  Hot,
	"gray": Gray,
	"hsv":  HSV,
}

// ColormapNames lists the available colormap names in sorted order.
func ColormapNames() []string {
	names := make([]string, 0, len(colormapsByName))
	for name := range colormapsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a colormap by its case-insensitive name.
func ByName(name string) (Colormap, error) {
	cm, ok := colormapsByName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (have: %s): %w",
			name, strings.Join(ColormapNames(), ", "), mandelgrid.ErrInvalidArgument)
	}
	return cm, nil
}

// fraction normalizes n against maxIter. A zero budget means every point is
// treated as bounded, hence fully saturated.
func fraction(n, maxIter int) float64 {
	if maxIter <= 0 {
		return 1
	}
	return float64(n) / float64(maxIter)
}

// Hot is the classic black-red-yellow-white heat ramp. Points that never
// escape end up white, matching how plotting libraries shade the top of the
// value range.
func Hot(n, maxIter int) color.RGBA {
	t := fraction(n, maxIter)
	r := clamp01(3 * t)
	g := clamp01(3*t - 1)
	b := clamp01(3*t - 2)
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}

// Gray shades iteration counts linearly from black to white.
func Gray(n, maxIter int) color.RGBA {
	v := uint8(clamp01(fraction(n, maxIter)) * 255)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// HSV cycles the hue with the iteration count and paints non-escaping points
// black, the usual look for fractal wall art.
func HSV(n, maxIter int) color.RGBA {
	if n >= maxIter {
		return color.RGBA{A: 255}
	}
	hue := math.Mod(float64(n)*0.03, 1.0)
	return hsvToRGB(hue, 1, 1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// hsvToRGB converts h, s, v in [0,1] to an opaque RGBA color.
func hsvToRGB(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
