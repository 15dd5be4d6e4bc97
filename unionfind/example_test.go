// File: unionfind/example_test.go
package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// ExampleDisjointSet_Union joins a few elements and reports the partition.
func ExampleDisjointSet_Union() {
	ds, _ := unionfind.New(6)
	_, _ = ds.Union(0, 1)
	_, _ = ds.Union(1, 2)
	_, _ = ds.Union(4, 5)

	c02, _ := ds.Connected(0, 2)
	c03, _ := ds.Connected(0, 3)
	fmt.Println("sets:", ds.Count())
	fmt.Println("0~2:", c02)
	fmt.Println("0~3:", c03)

	// Output:
	// sets: 3
	// 0~2: true
	// 0~3: false
}
