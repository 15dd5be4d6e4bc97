// Package percolation models site percolation on an n×n grid: sites start
// blocked, are opened one at a time, and the Grid answers whether a path of
// open sites joins the top row to the bottom row.
//
// What:
//
//   - Grid owns the open/blocked state of n² sites addressed by 1-based
//     (row, col) coordinates.
//   - Open links a newly opened site to its open orthogonal neighbors (N, E,
//     S, W) inside a unionfind.DisjointSet.
//   - Two synthetic elements, virtual top (index n²) and virtual bottom
//     (index n²+1), stand for "all of row 1" and "all of row n", so
//     Percolates is a single connectivity query instead of an O(n) scan.
//
// Fullness:
//
//   - A site is full when it is open and joined to row 1 by open sites.
//   - Fullness is answered from a second DisjointSet that has the virtual top
//     but no virtual bottom. With a single structure, once the system
//     percolates every open site touching the bottom row would look full
//     through the bottom element ("backwash").
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized (at most 6 unions per structure).
//   - IsOpen:            O(1).
//   - IsFull:            O(α(n²)) amortized.
//   - Percolates:        O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidSize: grid size n is not in [1, MaxSize].
//   - ErrOutOfRange: (row, col) lies outside [1, n]².
//
// Both wrap ErrInvalidArgument. A failed call never mutates the grid.
//
// Related packages:
//
//	unionfind/      — weighted quick-union with path compression used by Grid
//	stats/          — independent trials, mean, sample stddev, 95% confidence interval
//	cmd/percolation — `percolation stats <n> <trials>`, `percolation grid <n>`
package percolation
