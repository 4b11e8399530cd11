package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/bgiri25/mandelgrid"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"hot", "HOT", "gray", "hsv"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("viridis"); !errors.Is(err, mandelgrid.ErrInvalidArgument) {
		t.Errorf("ByName(viridis): got %v, want ErrInvalidArgument", err)
	}
}

func TestHotEndpoints(t *testing.T) {
	if got := Hot(0, 80); got != (color.RGBA{A: 255}) {
		t.Errorf("Hot(0, 80) = %+v, want black", got)
	}
	if got := Hot(80, 80); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Hot(80, 80) = %+v, want white", got)
	}
}

func TestGrayIsMonotonicGrayscale(t *testing.T) {
	prev := -1
	for n := 0; n <= 80; n += 8 {
		c := Gray(n, 80)
		if c.R != c.G || c.G != c.B {
			t.Fatalf("Gray(%d, 80) = %+v, not gray", n, c)
		}
		if int(c.R) < prev {
			t.Fatalf("Gray not monotonic at n=%d", n)
		}
		prev = int(c.R)
	}
}

func TestHSVBoundedPointsAreBlack(t *testing.T) {
	if got := HSV(80, 80); got != (color.RGBA{A: 255}) {
		t.Errorf("HSV(80, 80) = %+v, want black", got)
	}
	if got := HSV(10, 80); got == (color.RGBA{A: 255}) {
		t.Error("HSV(10, 80) is black, want a hue")
	}
}

func TestColormapsOpaqueAndDefinedOnZeroBudget(t *testing.T) {
	for _, name := range ColormapNames() {
		cm, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range []int{0, 1, 40, 80} {
			if c := cm(n, 80); c.A != 255 {
				t.Errorf("%s(%d, 80) alpha = %d, want 255", name, n, c.A)
			}
		}
		// maxIter 0 must not divide by zero
		_ = cm(0, 0)
	}
}
