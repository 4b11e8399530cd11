package mandelgrid

import (
	"fmt"
	"sort"
	"strings"
)

// Region is a rectangle in the complex plane: x spans the real axis, y the
// imaginary axis. Reversed bounds (max < min) are not rejected; they simply
// produce non-increasing sample axes.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Well-known views of the Mandelbrot set, selectable by name on the CLI.
var (
	// ClassicView frames the whole set, the standard textbook picture.
	ClassicView = Region{
		Xmin: -2.0,
		Xmax: 1.0,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// SeahorseValley sits between the main cardioid and the period-2 bulb,
	// full of curling seahorse-shaped filaments.
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// ElephantValley shows trunk-like tendrils off a large bulb.
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// SpiralMinibrot is a small copy of the set wrapped in tight spiral arms.
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// TripleSpiral is a threefold symmetric spiral structure.
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}
)

var regionsByName = map[string]Region{
	"classic":         ClassicView,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
}

// RegionNames lists the selectable region names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regionsByName))
	for name := range regionsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionByName looks up one of the predefined regions. The name match is
// case-insensitive.
func RegionByName(name string) (Region, error) {
	r, ok := regionsByName[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("unknown region %q (have: %s): %w",
			name, strings.Join(RegionNames(), ", "), ErrInvalidArgument)
	}
	return r, nil
}
