package fixedcol

import "errors"

var (
	// ErrFull is returned when an insertion is attempted on a container
	// that already holds capacity elements. The rejected value stays with
	// the caller.
	ErrFull = errors.New("fixedcol: container full")

	// ErrEmpty is returned when a removal or peek is attempted on a
	// container that holds no elements.
	ErrEmpty = errors.New("fixedcol: container empty")
)
