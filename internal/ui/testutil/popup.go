package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/ui/popup"
)

// PopupHarness drives a popup.Popup in tests and records the commands it
// returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

func (h *PopupHarness) Popup() popup.Popup { return h.popup }
func (h *PopupHarness) View() string { return h.popup.View() }

// Send delivers msg and returns the resulting command.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey delivers a key press, see Key.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.Send(Key(key))
}

// Type sends text one rune at a time, the way a terminal delivers typing.
func (h *PopupHarness) Type(text string) {
	for _, r := range text {
		h.SendKey(string(r))
	}
}

// Commands returns the commands collected since creation or the last
// ClearCommands.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastMsg runs the most recent command and returns its message, or nil
// when no command was collected.
func (h *PopupHarness) LastMsg() tea.Msg {
	if len(h.cmds) == 0 {
		return nil
	}
	return ExecuteCmd(h.cmds[len(h.cmds)-1])
}

// ClearCommands forgets the collected commands.
func (h *PopupHarness) ClearCommands() {
	h.cmds = nil
}

// ViewContains reports whether the stripped view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

// ExecuteCmd runs cmd and returns its message, or nil for a nil cmd.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
