package tensor

import "github.com/pkg/errors"

// Error taxonomy. Every operation returns one of these (possibly wrapped with
// context); match with errors.Is.
var (
	ErrInvalidShape      = errors.New("tensor: invalid shape")
	ErrAllocation        = errors.New("tensor: allocation failure")
	ErrBounds            = errors.New("tensor: index out of bounds")
	ErrShapeMismatch     = errors.New("tensor: shape mismatch")
	ErrRankMismatch      = errors.New("tensor: rank mismatch")
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")
	ErrAxisOutOfBounds   = errors.New("tensor: axis out of bounds")
	ErrReleased          = errors.New("tensor: use of released tensor")
)
