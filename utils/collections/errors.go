package collections

import "github.com/pkg/errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrAllocationFailure    = errors.New("allocation failure")
	ErrNilValue             = errors.New("nil value")
	ErrDestroyed            = errors.New("map destroyed")
)
