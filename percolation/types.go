// Package percolation defines core types and sentinel errors
// for the percolation grid.
package percolation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/unionfind"
)

// ErrInvalidArgument is the common kind of every precondition violation.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

var (
	// ErrInvalidSize indicates a grid size n <= 0.
	ErrInvalidSize = fmt.Errorf("%w: grid size must be > 0", ErrInvalidArgument)
	// ErrOutOfRange indicates (row, col) outside [1, n]².
	ErrOutOfRange = fmt.Errorf("%w: site out of range", ErrInvalidArgument)
)

// MaxSize is the largest grid size whose n²+2 union-find elements fit in an int.
var MaxSize = maxSize()

// maxSize returns ⌊√(math.MaxInt-2)⌋, correcting the float estimate with
// division-based checks so no product can overflow.
func maxSize() int {
	const limit = math.MaxInt - 2
	r := int(math.Sqrt(float64(limit)))
	for r > limit/r {
		r--
	}
	for r+1 <= limit/(r+1) {
		r++
	}

	return r
}

// SiteState is the observable state of one site.
type SiteState int

const (
	// Blocked sites cannot be traversed.
	Blocked SiteState = iota
	// Open sites are traversable but not joined to the top row.
	Open
	// Full sites are open and joined to the top row by open sites.
	Full
)

// String returns the single-character glyph used by Grid.String.
func (s SiteState) String() string {
	switch s {
	case Open:
		return "."
	case Full:
		return "~"
	default:
		return "#"
	}
}

// conn4 lists orthogonal neighbor offsets as (dRow, dCol): N, E, S, W.
var conn4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n percolation system.
// open[i] holds the state of the site with row-major index i.
// uf spans n²+2 elements (sites, virtual top, virtual bottom) and decides
// Percolates; full spans n²+1 elements (sites, virtual top) and decides IsFull.
// The zero value is not usable; construct with New.
// Grid is not safe for concurrent use.
type Grid struct {
	n         int
	open      []bool
	openCount int
	uf        *unionfind.DisjointSet
	full      *unionfind.DisjointSet
	top       int // virtual top index: n²
	bottom    int // virtual bottom index: n²+1
}
