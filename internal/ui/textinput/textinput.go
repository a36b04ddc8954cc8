// Package textinput provides a single-line text entry popup.
package textinput

import (
	"strings"

	bti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/popup"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Result carries the entered text back to the caller, along with the
// context given to Start. Canceled is set when the user pressed esc.
type Result struct {
	Text     string
	Context  any
	Canceled bool
}

func (Result) ActionType() string { return "textinput.result" }

func resultMsg(r Result) action.Msg {
	return action.Msg{Source: "textinput", Action: r}
}

// CharLimit caps the length of an entry.
const CharLimit = 256

// Model is a text entry popup backed by a bubbles text input.
type Model struct {
	ui.Base
	title   string
	input   bti.Model
	context any // passed through to Result
}

// New creates an idle text input popup.
func New() Model {
	ti := bti.New()
	ti.CharLimit = CharLimit
	ti.Prompt = "> "
	return Model{input: ti}
}

// Start opens the popup with a title, an initial value and a caller
// context handed back in the Result.
func (m *Model) Start(title, initial, placeholder string, context any) {
	m.title = title
	m.context = context
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
}

// Value is the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return bti.Blink
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, m.finish(Result{Canceled: true, Context: m.context})
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			return m, m.finish(Result{Text: text, Context: m.context})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) finish(r Result) tea.Cmd {
	m.input.Blur()
	return func() tea.Msg { return resultMsg(r) }
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary).Render(m.title)
	hint := s.Subtle.Render("enter confirm · esc cancel")
	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
