package notepad

// ViewState holds the presentation toggles.
type ViewState struct {
	WordWrap  bool
	StatusBar bool
}

// DefaultView has word wrap and the status bar on.
func DefaultView() ViewState {
	return ViewState{WordWrap: true, StatusBar: true}
}

// ToggleWordWrap flips word wrap and reports the new mode on the status line.
func (c *Controller) ToggleWordWrap() {
	c.view.WordWrap = !c.view.WordWrap
	c.setStatus(statusWrap(c.view.WordWrap))
}

// ToggleStatusBar flips status bar visibility. The status text keeps being
// updated while hidden.
func (c *Controller) ToggleStatusBar() {
	c.view.StatusBar = !c.view.StatusBar
}

func (c *Controller) View() ViewState { return c.view }
