package mandelgrid

import "errors"

// ErrInvalidArgument indicates a parameter outside its valid range, such as a
// non-positive sample count or a negative iteration budget.
var ErrInvalidArgument = errors.New("mandelgrid: invalid argument")
