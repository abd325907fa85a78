package logic

// Navigator tracks the focused cell and the vertical scroll window.
// All movement is clamped to the current grid dimensions.
type Navigator struct {
	focusRow int
	focusCol int
	offset   int // first visible row
	height   int // visible row count
	rows     int
	cols     int
}

func NewNavigator() *Navigator {
	return &Navigator{height: 1}
}

// SetDimensions updates the grid size and re-clamps focus and scroll.
func (n *Navigator) SetDimensions(rows, cols int) {
	n.rows = rows
	n.cols = cols
	n.clamp()
}

// SetViewportHeight updates the number of visible rows.
func (n *Navigator) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	n.height = h
	n.clamp()
}

func (n *Navigator) FocusRow() int { return n.focusRow }
func (n *Navigator) FocusCol() int { return n.focusCol }
func (n *Navigator) Offset() int   { return n.offset }
func (n *Navigator) Height() int   { return n.height }

// SetFocus moves focus to an absolute position, clamped.
func (n *Navigator) SetFocus(row, col int) {
	n.focusRow = row
	n.focusCol = col
	n.clamp()
	n.ensureVisible()
}

// Move shifts focus by one step in the given direction. Paging moves by
// the viewport height; home/end jump within the current row or column.
func (n *Navigator) Move(direction string) {
	switch direction {
	case "up":
		n.focusRow--
	case "down":
		n.focusRow++
	case "left":
		n.focusCol--
	case "right":
		n.focusCol++
	case "pageup":
		n.focusRow -= n.height
	case "pagedown":
		n.focusRow += n.height
	case "home":
		n.focusCol = 0
	case "end":
		n.focusCol = n.cols - 1
	case "top":
		n.focusRow = 0
	case "bottom":
		n.focusRow = n.rows - 1
	}
	n.clamp()
	n.ensureVisible()
}

// Scroll shifts the viewport without moving focus.
func (n *Navigator) Scroll(delta int) {
	n.offset += delta
	n.clamp()
}

// VisibleRows returns the logical indices of rows inside the viewport.
func (n *Navigator) VisibleRows() []int {
	if n.rows == 0 {
		return nil
	}
	end := n.offset + n.height
	if end > n.rows {
		end = n.rows
	}
	visible := make([]int, 0, end-n.offset)
	for r := n.offset; r < end; r++ {
		visible = append(visible, r)
	}
	return visible
}

func (n *Navigator) clamp() {
	if n.focusRow >= n.rows {
		n.focusRow = n.rows - 1
	}
	if n.focusRow < 0 {
		n.focusRow = 0
	}
	if n.focusCol >= n.cols {
		n.focusCol = n.cols - 1
	}
	if n.focusCol < 0 {
		n.focusCol = 0
	}
	maxOffset := n.rows - n.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.offset > maxOffset {
		n.offset = maxOffset
	}
	if n.offset < 0 {
		n.offset = 0
	}
}

func (n *Navigator) ensureVisible() {
	if n.focusRow < n.offset {
		n.offset = n.focusRow
	} else if n.focusRow >= n.offset+n.height {
		n.offset = n.focusRow - n.height + 1
	}
}
