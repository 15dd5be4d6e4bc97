package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the common kind of every precondition violation.
var ErrInvalidArgument = errors.New("unionfind: invalid argument")

var (
	// ErrInvalidSize indicates the universe size is not positive.
	ErrInvalidSize = fmt.Errorf("%w: size must be > 0", ErrInvalidArgument)
	// ErrOutOfRange indicates an element outside [0, size).
	ErrOutOfRange = fmt.Errorf("%w: element out of range", ErrInvalidArgument)
)

// DisjointSet is a weighted quick-union structure with path compression.
// parent[i] is the parent of i (parent[i] == i for roots); size[r] is the
// number of elements under root r and is meaningless for non-roots.
// The zero value is not usable; construct with New.
// DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}
