package percolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// New constructs an n×n Grid with every site blocked.
// Returns ErrInvalidSize if n <= 0 or n > MaxSize.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 || n > MaxSize {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidSize, n, MaxSize)
	}
	sites := n * n
	// Sites occupy [0, n²); n² is the virtual top, n²+1 the virtual bottom.
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		full:   full,
		top:    sites,
		bottom: sites + 1,
	}, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within [1, n]².
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps 1-based (row, col) to a row-major index in [0, n²).
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

func (g *Grid) validate(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]²", ErrOutOfRange, row, col, g.n)
	}

	return nil
}

// link joins p and q in both structures. The virtual bottom only exists in
// uf; q == g.bottom is skipped for full.
// Indices are in range by construction, so an error is a programmer bug.
func (g *Grid) link(p, q int) {
	if _, err := g.uf.Union(p, q); err != nil {
		panic(err)
	}
	if q == g.bottom {
		return
	}
	if _, err := g.full.Union(p, q); err != nil {
		panic(err)
	}
}

// Open opens the site (row, col) if it is blocked and links it to the
// virtual top (row 1), the virtual bottom (row n) and every open orthogonal
// neighbor. Opening an already open site leaves the open count unchanged;
// re-linking is harmless because joining connected sets is a no-op.
//
// Steps:
//  1. Validate (row, col); nothing is mutated on error.
//  2. Flip the site to open, counting only the blocked→open transition.
//  3. Link to the virtual nodes. With n == 1 both apply.
//  4. Link to each in-bounds, open neighbor.
//
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	// 1. Validate.
	if err := g.validate(row, col); err != nil {
		return err
	}

	// 2. Mark open.
	i := g.index(row, col)
	if !g.open[i] {
		g.open[i] = true
		g.openCount++
	}

	// 3. Virtual nodes.
	if row == 1 {
		g.link(i, g.top)
	}
	if row == g.n {
		g.link(i, g.bottom)
	}

	// 4. Neighbors, bounds-checked before the open-state lookup.
	for _, d := range conn4 {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		j := g.index(nr, nc)
		if g.open[j] {
			g.link(i, j)
		}
	}

	return nil
}

// IsOpen reports whether the site (row, col) is open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether the site (row, col) is open and joined to the top
// row through open sites. Blocked sites are never full.
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.isFull(g.index(row, col)), nil
}

func (g *Grid) isFull(i int) bool {
	if !g.open[i] {
		return false
	}
	ok, err := g.full.Connected(i, g.top)
	if err != nil {
		panic(err)
	}

	return ok
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether the virtual top and virtual bottom share a set,
// i.e. some path of open sites spans row 1 to row n.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Percolates() bool {
	ok, err := g.uf.Connected(g.top, g.bottom)
	if err != nil {
		panic(err)
	}

	return ok
}

// OpenFraction returns NumberOfOpenSites / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.openCount) / float64(g.n*g.n)
}

// Sites returns a snapshot of every site's state; Sites()[r-1][c-1] is the
// state of (r, c).
// Complexity: O(n²·α(n²)).
func (g *Grid) Sites() [][]SiteState {
	out := make([][]SiteState, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]SiteState, g.n)
		for c := 0; c < g.n; c++ {
			i := r*g.n + c
			switch {
			case g.isFull(i):
				out[r][c] = Full
			case g.open[i]:
				out[r][c] = Open
			}
		}
	}

	return out
}

// FullSites counts the sites that are currently full.
func (g *Grid) FullSites() int {
	total := 0
	for i := range g.open {
		if g.isFull(i) {
			total++
		}
	}

	return total
}

// String renders the grid one row per line using SiteState glyphs:
// '#' blocked, '.' open, '~' full.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n * (g.n + 1))
	for _, row := range g.Sites() {
		for _, s := range row {
			b.WriteString(s.String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
