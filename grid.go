// Package mandelgrid computes escape-time iteration grids for the Mandelbrot
// set. The core is a pure batch transform: a Region of the complex plane is
// discretized into evenly spaced samples and every sample point is run
// through the quadratic escape-time recurrence. Rendering the resulting grid
// is a separate concern, handled by the render package.
package mandelgrid

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Params configures one grid computation. It is immutable for the duration
// of the call.
type Params struct {
	Region
	Width, Height int
	MaxIter       int
}

// DefaultParams returns the standard full view of the set at 1024x1024 with
// an iteration budget of 80.
func DefaultParams() Params {
	return Params{
		Region:  ClassicView,
		Width:   1024,
		Height:  1024,
		MaxIter: 80,
	}
}

// Grid holds escape-time iteration counts for a sampled region, row-major.
// Row index follows the imaginary axis (row 0 holds the Ymin samples), column
// index the real axis. Every count is in [0, MaxIter]; a count equal to
// MaxIter means the point did not escape within the budget. A Grid is fully
// populated before it is returned and must be treated as read-only.
type Grid struct {
	Width, Height int
	MaxIter       int

	counts []int
}

// At returns the iteration count for the sample at (x-axis[col], y-axis[row]).
func (g *Grid) At(row, col int) int {
	return g.counts[row*g.Width+col]
}

// Max returns the largest iteration count in the grid.
func (g *Grid) Max() int {
	max := 0
	for _, n := range g.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// newGrid validates p, builds both sample axes and allocates the grid.
// Invalid width/height surface as Linspace errors, so the whole computation
// fails fast before any cell is evaluated.
func newGrid(p Params) (g *Grid, xs, ys []float64, err error) {
	if p.MaxIter < 0 {
		return nil, nil, nil, fmt.Errorf("max iterations %d must not be negative: %w", p.MaxIter, ErrInvalidArgument)
	}
	xs, err = Linspace(p.Xmin, p.Xmax, p.Width)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("x axis: %w", err)
	}
	ys, err = Linspace(p.Ymin, p.Ymax, p.Height)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("y axis: %w", err)
	}
	g = &Grid{
		Width:   p.Width,
		Height:  p.Height,
		MaxIter: p.MaxIter,
		counts:  make([]int, p.Width*p.Height),
	}
	return g, xs, ys, nil
}

func (g *Grid) fillRow(xs, ys []float64, row int) {
	y := ys[row]
	base := row * g.Width
	for col, x := range xs {
		g.counts[base+col] = EscapeIterations(complex(x, y), g.MaxIter)
	}
}

// ComputeGrid evaluates the escape-time function over p's region and returns
// the finished iteration grid. It is a pure function: identical parameters
// yield identical grids.
func ComputeGrid(p Params) (*Grid, error) {
	g, xs, ys, err := newGrid(p)
	if err != nil {
		return nil, err
	}
	for row := 0; row < g.Height; row++ {
		g.fillRow(xs, ys, row)
	}
	return g, nil
}

// ComputeGridParallel is ComputeGrid with rows distributed across workers
// goroutines. Every cell is independent, so each worker owns a disjoint
// stride of rows and writes only within it; no locking is needed. The result
// is identical to the sequential computation. workers < 1 means one worker
// per CPU. ctx is checked between rows; on cancellation the partial grid is
// discarded and the context error returned.
func ComputeGridParallel(ctx context.Context, p Params, workers int) (*Grid, error) {
	g, xs, ys, err := newGrid(p)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > g.Height {
		workers = g.Height
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for row := start; row < g.Height; row += workers {
				if ctx.Err() != nil {
					return
				}
				g.fillRow(xs, ys, row)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
