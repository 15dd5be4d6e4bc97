package unionfind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/unionfind"
)

// TestNew_Errors verifies that New rejects non-positive sizes.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := unionfind.New(n)
		require.ErrorIs(t, err, unionfind.ErrInvalidSize, "New(%d)", n)
		require.ErrorIs(t, err, unionfind.ErrInvalidArgument, "New(%d)", n)
	}
}

// TestNew_Singletons checks that every element starts as its own root.
func TestNew_Singletons(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)
	require.Equal(t, 5, ds.Size())
	require.Equal(t, 5, ds.Count())
	for i := 0; i < 5; i++ {
		r, err := ds.Find(i)
		require.NoError(t, err)
		require.Equal(t, i, r)
		sz, err := ds.SetSize(i)
		require.NoError(t, err)
		require.Equal(t, 1, sz)
	}
}

// TestUnion_Basic follows the classic tinyUF sequence:
//
//	4-3 3-8 6-5 9-4 2-1 8-9 5-0 7-2 6-1 1-0 6-7
//
// Expect: two components {0,1,2,5,6,7} and {3,4,8,9}.
func TestUnion_Basic(t *testing.T) {
	ds, err := unionfind.New(10)
	require.NoError(t, err)

	pairs := [][2]int{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}, {8, 9}, {5, 0}, {7, 2}, {6, 1}, {1, 0}, {6, 7}}
	merged := 0
	for _, p := range pairs {
		ok, err := ds.Union(p[0], p[1])
		require.NoError(t, err)
		if ok {
			merged++
		}
	}
	require.Equal(t, 8, merged, "three pairs are redundant")
	require.Equal(t, 2, ds.Count())

	for _, q := range [][2]int{{0, 7}, {1, 6}, {3, 9}, {4, 8}} {
		c, err := ds.Connected(q[0], q[1])
		require.NoError(t, err)
		require.True(t, c, "%d~%d", q[0], q[1])
	}
	c, err := ds.Connected(0, 9)
	require.NoError(t, err)
	require.False(t, c)

	sz, err := ds.SetSize(2)
	require.NoError(t, err)
	require.Equal(t, 6, sz)
	sz, err = ds.SetSize(3)
	require.NoError(t, err)
	require.Equal(t, 4, sz)
}

// TestUnion_Idempotent ensures repeated unions neither merge nor change counts.
func TestUnion_Idempotent(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	ok, err := ds.Union(0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		ok, err = ds.Union(1, 0)
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 2, ds.Count())
	sz, err := ds.SetSize(0)
	require.NoError(t, err)
	require.Equal(t, 2, sz)
}

// TestUnion_SmallerUnderLarger verifies that the larger tree's root survives.
func TestUnion_SmallerUnderLarger(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	// {0,1,2} rooted at 0.
	_, _ = ds.Union(0, 1)
	_, _ = ds.Union(0, 2)
	// Singleton 3 passed first must still go under 0.
	_, err = ds.Union(3, 0)
	require.NoError(t, err)

	r, err := ds.Find(3)
	require.NoError(t, err)
	require.Equal(t, 0, r)
}

// TestOutOfRange verifies that every query rejects bad elements without mutation.
func TestOutOfRange(t *testing.T) {
	ds, err := unionfind.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
	}{
		{"FindNegative", func() error { _, err := ds.Find(-1); return err }},
		{"FindTooLarge", func() error { _, err := ds.Find(3); return err }},
		{"UnionFirst", func() error { _, err := ds.Union(3, 0); return err }},
		{"UnionSecond", func() error { _, err := ds.Union(0, 3); return err }},
		{"Connected", func() error { _, err := ds.Connected(0, -1); return err }},
		{"SetSize", func() error { _, err := ds.SetSize(7); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, unionfind.ErrOutOfRange) {
				t.Errorf("error = %v; want ErrOutOfRange", err)
			}
		})
	}
	require.Equal(t, 3, ds.Count(), "failed calls must not merge sets")
}

// TestFind_LongChain builds a chain and checks every element resolves to one root.
func TestFind_LongChain(t *testing.T) {
	const n = 1000
	ds, err := unionfind.New(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err = ds.Union(i-1, i)
		require.NoError(t, err)
	}
	require.Equal(t, 1, ds.Count())

	want, err := ds.Find(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		r, err := ds.Find(i)
		require.NoError(t, err)
		require.Equal(t, want, r)
	}
}
