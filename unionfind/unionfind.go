package unionfind

import "fmt"

// New returns a DisjointSet of n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Size returns the number of elements in the universe.
func (ds *DisjointSet) Size() int {
	return len(ds.parent)
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (ds *DisjointSet) Count() int {
	return ds.count
}

// validate reports ErrOutOfRange for p outside [0, Size()).
func (ds *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(ds.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, p, len(ds.parent))
	}

	return nil
}

// root walks to the root of p, halving the path on the way.
// p must already be validated.
func (ds *DisjointSet) root(p int) int {
	for ds.parent[p] != p {
		// Path halving: point p at its grandparent.
		ds.parent[p] = ds.parent[ds.parent[p]]
		p = ds.parent[p]
	}

	return p
}

// Find returns the representative of the set containing p.
// Two elements are in the same set iff Find returns the same value for both.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	return ds.root(p) == ds.root(q), nil
}

// Union merges the sets containing p and q and reports whether a merge
// happened. Joining elements that already share a set is a no-op that
// returns false.
//
// Steps:
//  1. Validate both elements; nothing is mutated on error.
//  2. Resolve both roots.
//  3. Attach the smaller tree under the larger root; on a tie q's root goes
//     under p's root.
//
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(p, q int) (bool, error) {
	// 1. Validate.
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	// 2. Resolve roots.
	rootP, rootQ := ds.root(p), ds.root(q)
	if rootP == rootQ {
		return false, nil
	}

	// 3. Link by size.
	if ds.size[rootP] < ds.size[rootQ] {
		ds.parent[rootP] = rootQ
		ds.size[rootQ] += ds.size[rootP]
	} else {
		ds.parent[rootQ] = rootP
		ds.size[rootP] += ds.size[rootQ]
	}
	ds.count--

	return true, nil
}

// SetSize returns the number of elements in the set containing p.
func (ds *DisjointSet) SetSize(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.size[ds.root(p)], nil
}
