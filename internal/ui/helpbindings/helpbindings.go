// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/swiperow/internal/keymap"
	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/popup"
	"github.com/llehouerou/swiperow/internal/ui/render"
	"github.com/llehouerou/swiperow/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Close is emitted when the user dismisses the popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

func closeMsg() action.Msg {
	return action.Msg{Source: "helpbindings", Action: Close{}}
}

// AllContexts lists every binding context in display order.
var AllContexts = []string{"global", "list", "row", "rows"}

var categoryLabels = map[string]string{
	"global": "Global",
	"list":   "List",
	"row":    "Selected Row",
	"rows":   "All Rows",
}

// chrome is the height taken by the title, footer and popup border.
const chrome = 10

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup showing every context.
func New() Model {
	m := Model{}
	m.SetContexts(AllContexts)
	return m
}

// SetContexts sets which binding contexts to display. Order follows
// AllContexts regardless of the order given.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range AllContexts {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return closeMsg() }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup. The popup manager adds the border.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")
	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		visible = append(visible, line+strings.Repeat(" ", width-lipgloss.Width(line)))
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer(len(lines))))
	return b.String()
}

func (m Model) buildContent() string {
	t := styles.T()
	keyStyle := t.S().Key
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(render.Separator(keyWidth + 15)))
			sb.WriteString("\n")
			current = b.Context
		}

		sb.WriteString(keyStyle.Render(render.Fit(keyLabel(b), keyWidth)))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins the keys of b, naming the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) footer(total int) string {
	if total <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	total := strings.Count(m.buildContent(), "\n") + 1
	return max(total-m.visibleHeight(), 0)
}
