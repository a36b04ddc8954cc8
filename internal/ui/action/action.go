// Package action defines the messages popups send back to the application.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a popup asks the application to do. ActionType names
// it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the popup that produced it.
type Msg struct {
	Source string // "helpbindings", "textinput"
	Action Action
}

var _ tea.Msg = Msg{}
