// File: percolation/example_test.go
package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Open / Percolates
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Open opens sites on a 3×3 grid until a top-to-bottom path
// forms.
// Scenario:
//
//   - Open (1,2), (2,2), (2,3): a full cluster hanging from the top row.
//   - Open (3,1): open but isolated, so not full.
//   - Open (3,2): joins both, the grid percolates.
//
// Glyphs: '#' blocked, '.' open, '~' full.
func ExampleGrid_Open() {
	g, _ := percolation.New(3)
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {2, 3}, {3, 1}} {
		_ = g.Open(rc[0], rc[1])
	}
	fmt.Print(g)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(3, 2)
	fmt.Print(g)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("open sites:", g.NumberOfOpenSites())

	// Output:
	// #~#
	// #~~
	// .##
	// percolates: false
	// #~#
	// #~~
	// ~~#
	// percolates: true
	// open sites: 5
}
