// Package handler provides the result type shared by input handlers and
// helpers to run them in order or by action.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler does not apply.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that apply but have nothing to run.
var HandledNoCmd = Result{Handled: true}

// Handled returns a handled result carrying cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle the current input.
type Handler func() Result

// Chain runs handlers in order until one handles the input.
func Chain(handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return r
		}
	}
	return NotHandled
}

// Table maps keys, typically keymap actions, to handlers.
type Table[K comparable] map[K]Handler

// Dispatch runs the handler registered for k.
func (t Table[K]) Dispatch(k K) Result {
	if h, ok := t[k]; ok && h != nil {
		return h()
	}
	return NotHandled
}
