package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalized(t *testing.T) {
	cases := []struct {
		name string
		in   Range
		want Range
	}{
		{"already normalized", Range{0, 0, 2, 2}, Range{0, 0, 2, 2}},
		{"reversed rows", Range{5, 1, 2, 3}, Range{2, 1, 5, 3}},
		{"reversed cols", Range{1, 7, 3, 2}, Range{1, 2, 3, 7}},
		{"reversed both", Range{4, 4, 0, 0}, Range{0, 0, 4, 4}},
		{"degenerate", Range{3, 3, 3, 3}, Range{3, 3, 3, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized()
			assert.Equal(t, tc.want, got)
			assert.True(t, got.StartRow <= got.EndRow)
			assert.True(t, got.StartCol <= got.EndCol)
			// Idempotent.
			assert.Equal(t, got, got.Normalized())
		})
	}
}

func TestContainsCorners(t *testing.T) {
	ranges := []Range{
		{0, 0, 2, 2},
		{5, 8, 1, 2}, // reversed on both axes
		{3, 3, 3, 3},
	}

	for _, r := range ranges {
		n := r.Normalized()
		corners := []Cell{
			{n.StartRow, n.StartCol},
			{n.StartRow, n.EndCol},
			{n.EndRow, n.StartCol},
			{n.EndRow, n.EndCol},
		}
		for _, c := range corners {
			assert.True(t, r.Contains(c.Row, c.Col), "range %+v should contain corner %+v", r, c)
		}
		assert.False(t, r.Contains(n.StartRow-1, n.StartCol))
		assert.False(t, r.Contains(n.EndRow+1, n.EndCol))
		assert.False(t, r.Contains(n.StartRow, n.EndCol+1))
	}
}

func TestAnyContains(t *testing.T) {
	ranges := []Range{{0, 0, 1, 1}, {4, 4, 6, 6}}

	assert.True(t, AnyContains(ranges, 0, 1))
	assert.True(t, AnyContains(ranges, 5, 5))
	assert.False(t, AnyContains(ranges, 2, 2))
	assert.False(t, AnyContains(nil, 0, 0))
}

func TestCellsRowMajor(t *testing.T) {
	r := Range{1, 1, 0, 2} // reversed rows
	cells := r.Cells()

	want := []Cell{
		{0, 1}, {0, 2},
		{1, 1}, {1, 2},
	}
	assert.Equal(t, want, cells)
}

func TestCellsInRangesDedup(t *testing.T) {
	a := Range{0, 0, 1, 1} // 4 cells
	b := Range{1, 1, 2, 2} // 4 cells, overlaps a at (1,1)

	cells := CellsInRanges([]Range{a, b})
	require.Len(t, cells, 7)

	seen := make(map[Cell]int)
	for _, c := range cells {
		seen[c]++
	}
	for c, count := range seen {
		assert.Equal(t, 1, count, "cell %+v counted more than once", c)
	}
}

func TestFromAnchorPreservesDirection(t *testing.T) {
	r := FromAnchor(Cell{5, 5}, Cell{2, 1})

	assert.Equal(t, Range{5, 5, 2, 1}, r)
	assert.Equal(t, Range{2, 1, 5, 5}, r.Normalized())
}

func TestCellCount(t *testing.T) {
	assert.Equal(t, 1, SingleCell(3, 4).CellCount())
	assert.Equal(t, 9, Range{0, 0, 2, 2}.CellCount())
	assert.Equal(t, 9, Range{2, 2, 0, 0}.CellCount())
	assert.Equal(t, 6, Range{1, 0, 2, 2}.CellCount())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Range{0, 0, 2, 2}, Range{2, 2, 0, 0}))
	assert.True(t, Equal(Range{1, 3, 4, 0}, Range{4, 0, 1, 3}))
	assert.False(t, Equal(Range{0, 0, 2, 2}, Range{0, 0, 2, 3}))
}

func TestPublic(t *testing.T) {
	p := Range{3, 2, 1, 0}.Public()

	assert.Equal(t, Cell{1, 0}, p.From)
	assert.Equal(t, Cell{3, 2}, p.To)
	assert.Equal(t, Range{1, 0, 3, 2}, FromPublic(p))
}
