package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/popup"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

var _ popup.Popup = (*errorBox)(nil)

// errorBox shows a failure until the next key.
type errorBox struct {
	ui.Base
	msg string
}

func (e *errorBox) Init() tea.Cmd { return nil }
func (e *errorBox) Update(tea.Msg) (popup.Popup, tea.Cmd) { return e, nil }

func (e *errorBox) View() string {
	s := styles.T().S()
	return s.Error.Bold(true).Render("Error") + "\n\n" +
		e.msg + "\n\n" +
		s.Subtle.Render("Press any key to dismiss")
}
