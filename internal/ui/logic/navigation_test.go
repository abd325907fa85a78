package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorClampsFocus(t *testing.T) {
	n := NewNavigator()
	n.SetDimensions(5, 3)
	n.SetViewportHeight(10)

	n.SetFocus(99, 99)
	assert.Equal(t, 4, n.FocusRow())
	assert.Equal(t, 2, n.FocusCol())

	n.SetFocus(-1, -1)
	assert.Equal(t, 0, n.FocusRow())
	assert.Equal(t, 0, n.FocusCol())
}

func TestNavigatorMoveAndPaging(t *testing.T) {
	n := NewNavigator()
	n.SetDimensions(100, 4)
	n.SetViewportHeight(10)

	n.Move("down")
	n.Move("down")
	assert.Equal(t, 2, n.FocusRow())

	n.Move("pagedown")
	assert.Equal(t, 12, n.FocusRow())
	assert.Equal(t, 3, n.Offset(), "viewport should scroll to keep focus visible")

	n.Move("pageup")
	assert.Equal(t, 2, n.FocusRow())

	n.Move("end")
	assert.Equal(t, 3, n.FocusCol())
	n.Move("home")
	assert.Equal(t, 0, n.FocusCol())

	n.Move("bottom")
	assert.Equal(t, 99, n.FocusRow())
	n.Move("top")
	assert.Equal(t, 0, n.FocusRow())
	assert.Equal(t, 0, n.Offset())
}

func TestNavigatorVisibleRows(t *testing.T) {
	n := NewNavigator()
	n.SetDimensions(3, 2)
	n.SetViewportHeight(10)
	assert.Equal(t, []int{0, 1, 2}, n.VisibleRows())

	n.SetDimensions(0, 0)
	assert.Empty(t, n.VisibleRows())
}

func TestNavigatorShrinkReclamps(t *testing.T) {
	n := NewNavigator()
	n.SetDimensions(50, 5)
	n.SetViewportHeight(10)
	n.SetFocus(49, 4)
	assert.Equal(t, 40, n.Offset())

	n.SetDimensions(20, 3)
	assert.Equal(t, 19, n.FocusRow())
	assert.Equal(t, 2, n.FocusCol())
	assert.Equal(t, 10, n.Offset())
}
