package mandelgrid

// EscapeIterations runs the quadratic recurrence z = z*z + c starting from
// z = 0 and returns the number of iterations before |z|² exceeds 4, or
// maxIter if the orbit stays bounded for the whole budget. A point with
// |z| > 2 is proven to diverge, so the squared-magnitude test against 4 needs
// no square root.
func EscapeIterations(c complex128, maxIter int) int {
	z := complex(0, 0)
	for n := 0; n < maxIter; n++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4.0 {
			return n
		}
	}
	return maxIter
}
