package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsel/internal/grid/geometry"
)

func TestNewStateTaggedVariant(t *testing.T) {
	cell := NewState(ModeCell)
	require.NotNil(t, cell.Cell)
	assert.Nil(t, cell.Row)
	assert.Nil(t, cell.Range)

	row := NewState(ModeRow)
	require.NotNil(t, row.Row)
	assert.Nil(t, row.Cell)
	assert.Equal(t, -1, row.Row.Anchor)
	assert.Equal(t, -1, row.Row.LastSelected)

	rng := NewState(ModeRange)
	require.NotNil(t, rng.Range)
	assert.Equal(t, -1, rng.Range.Active)
}

func TestClearAllResetsEverything(t *testing.T) {
	s := NewState(ModeRange)
	s.Range.Ranges = []geometry.Range{geometry.SingleCell(1, 1)}
	s.Range.Active = 0
	s.Range.Anchor = &geometry.Cell{Row: 1, Col: 1}
	s.Range.Dragging = true
	s.Pending = &KeyboardUpdate{Shift: true}

	s.ClearAll()

	assert.Empty(t, s.Range.Ranges)
	assert.Equal(t, -1, s.Range.Active)
	assert.Nil(t, s.Range.Anchor)
	assert.False(t, s.Range.Dragging)
	assert.Nil(t, s.Pending)
	assert.True(t, s.IsEmpty())
}

func TestActiveRange(t *testing.T) {
	s := NewState(ModeRange)
	assert.Nil(t, s.ActiveRange())

	s.Range.Ranges = []geometry.Range{geometry.SingleCell(0, 0), geometry.SingleCell(2, 2)}
	s.Range.Active = 1
	require.NotNil(t, s.ActiveRange())
	assert.Equal(t, geometry.SingleCell(2, 2), *s.ActiveRange())

	s.Range.Active = 5 // stale index degrades to none
	assert.Nil(t, s.ActiveRange())
}

func TestPublicRangesCellMode(t *testing.T) {
	s := NewState(ModeCell)
	assert.Empty(t, s.PublicRanges(4))

	s.Cell.Selected = &geometry.Cell{Row: 2, Col: 3}
	ranges := s.PublicRanges(4)
	require.Len(t, ranges, 1)
	assert.Equal(t, ranges[0].From, ranges[0].To)
	assert.Equal(t, geometry.Cell{Row: 2, Col: 3}, ranges[0].From)
}

func TestPublicRangesRowMode(t *testing.T) {
	s := NewState(ModeRow)
	s.Row.Selected[4] = struct{}{}
	s.Row.Selected[1] = struct{}{}

	ranges := s.PublicRanges(3)
	require.Len(t, ranges, 2)
	assert.Equal(t, geometry.PublicRange{From: geometry.Cell{Row: 1}, To: geometry.Cell{Row: 1, Col: 2}}, ranges[0])
	assert.Equal(t, geometry.PublicRange{From: geometry.Cell{Row: 4}, To: geometry.Cell{Row: 4, Col: 2}}, ranges[1])
}

func TestPublicRangesRangeModeNormalizes(t *testing.T) {
	s := NewState(ModeRange)
	s.Range.Ranges = []geometry.Range{{StartRow: 3, StartCol: 2, EndRow: 0, EndCol: 0}}

	ranges := s.PublicRanges(5)
	require.Len(t, ranges, 1)
	assert.Equal(t, geometry.Cell{Row: 0, Col: 0}, ranges[0].From)
	assert.Equal(t, geometry.Cell{Row: 3, Col: 2}, ranges[0].To)
}
