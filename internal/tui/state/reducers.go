package state

// hScrollStep is the horizontal jump when the cursor leaves the visible columns.
const hScrollStep = 8

// Resize updates the terminal size.
func Resize(s UIState, width, height int) UIState {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.Width = width
	s.Height = height
	return s
}

// SetMode switches the input mode and drops any notice.
func SetMode(s UIState, m Mode) UIState {
	s.Mode = m
	s.Notice = ""
	return s
}

// ResetScroll moves the view back to the top-left corner.
func ResetScroll(s UIState) UIState {
	s.Top = 0
	s.Left = 0
	return s
}

// FollowRow scrolls vertically so row is among the rows visible rows.
func FollowRow(s UIState, row, rows int) UIState {
	if rows <= 0 {
		return s
	}
	if row < s.Top {
		s.Top = row
	} else if row >= s.Top+rows {
		s.Top = row - rows + 1
	}
	if s.Top < 0 {
		s.Top = 0
	}
	return s
}

// FollowCol scrolls horizontally so display column col is visible in a
// view cols wide.
func FollowCol(s UIState, col, cols int) UIState {
	if cols <= 0 {
		return s
	}
	if col < s.Left {
		s.Left = col - hScrollStep
	} else if col >= s.Left+cols {
		s.Left = col - cols + hScrollStep
	}
	if s.Left > col {
		s.Left = col
	}
	if s.Left < 0 {
		s.Left = 0
	}
	return s
}

// ScrollBy moves the view delta rows, keeping it inside [0, total-rows].
func ScrollBy(s UIState, delta, total, rows int) UIState {
	s.Top += delta
	if max := total - rows; s.Top > max {
		s.Top = max
	}
	if s.Top < 0 {
		s.Top = 0
	}
	return s
}

// ScrollLeft adjusts horizontal scroll towards column zero.
func ScrollLeft(s UIState, fast bool) UIState {
	delta := 1
	if fast {
		delta = hScrollStep
	}
	if s.Left >= delta {
		s.Left -= delta
	} else {
		s.Left = 0
	}
	return s
}

// ScrollRight adjusts horizontal scroll, stopping once the widest line's end
// is in view.
func ScrollRight(s UIState, fast bool, contentWidth, cols int) UIState {
	delta := 1
	if fast {
		delta = hScrollStep
	}
	s.Left += delta
	if max := contentWidth - cols + 1; s.Left > max {
		s.Left = max
	}
	if s.Left < 0 {
		s.Left = 0
	}
	return s
}
