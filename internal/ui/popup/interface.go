package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal drawn over the row list. The popup manager sizes it,
// sends it every key while it is on top and draws the border around View.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	SetSize(width, height int)
}
