// Package unionfind provides a disjoint-set (union-find) structure over a
// fixed universe of integer elements [0, size).
//
// What:
//
//   - DisjointSet tracks a partition of {0, …, size-1} into disjoint sets.
//   - Union merges the sets containing two elements.
//   - Find returns the canonical representative (root) of an element's set.
//
// How:
//
//   - Weighted quick-union: the root of the smaller tree (by element count)
//     is attached under the root of the larger one, so tree height stays
//     O(log n).
//   - Path halving during Find: every visited node is re-pointed to its
//     grandparent, flattening the tree for subsequent queries.
//
// Complexity:
//
//   - New:     O(n) time, O(n) memory.
//   - Find:    O(α(n)) amortized.
//   - Union:   O(α(n)) amortized.
//   - Count:   O(1).
//
// Errors:
//
//   - ErrInvalidSize: requested universe size is not positive.
//   - ErrOutOfRange: an element lies outside [0, size).
//
// Both wrap ErrInvalidArgument, so callers may match either.
package unionfind
