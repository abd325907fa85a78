package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsel/internal/grid/reconcile"
)

func edgeGridState() *GridState {
	s := NewFrameSurface()
	s.SetWindow([]int{0, 1, 2}, 3, func(col int) bool { return col == 0 })
	return &GridState{
		Columns:  layoutColumns(),
		Rows:     layoutRows(),
		Layout:   NewLayout(layoutColumns(), layoutRows(), false),
		Surface:  s,
		FocusRow: -1,
		FocusCol: -1,
	}
}

func TestCellStyleEdgePrecedence(t *testing.T) {
	r := NewRenderer()
	gs := edgeGridState()

	sel := reconcile.FlagSelected
	gs.Surface.MarkCell(0, 1, sel|reconcile.FlagEdgeTop|reconcile.FlagEdgeFirst)
	gs.Surface.MarkCell(1, 1, sel|reconcile.FlagEdgeLast)
	gs.Surface.MarkCell(1, 2, sel)
	gs.Surface.MarkCell(2, 1, sel|reconcile.FlagEdgeBottom|reconcile.FlagEdgeLast)

	assert.Equal(t, r.styles.EdgeTop, r.cellStyle(gs, 0, 1, false, false))
	assert.Equal(t, r.styles.EdgeLast, r.cellStyle(gs, 1, 1, false, false))
	assert.Equal(t, r.styles.Selected, r.cellStyle(gs, 1, 2, false, false))
	assert.Equal(t, r.styles.EdgeBottom, r.cellStyle(gs, 2, 1, false, false))
	assert.Equal(t, r.styles.Cell, r.cellStyle(gs, 2, 2, false, false))
}
