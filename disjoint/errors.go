package disjoint

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is matched by every IndexError.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError reports an element index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of bounds: %d not in [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
