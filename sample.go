package mandelgrid

import "fmt"

// Linspace returns count evenly spaced values from start to stop, both
// endpoints included. For count == 1 the result is just [start]; the step is
// never computed in that case, so there is no division by zero to worry about.
func Linspace(start, stop float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("sample count %d must be at least 1: %w", count, ErrInvalidArgument)
	}
	if count == 1 {
		return []float64{start}, nil
	}

	step := (stop - start) / float64(count-1)
	vals := make([]float64, count)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}
	return vals, nil
}
