// internal/app/update.go
package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/app/popupctl"
	"github.com/llehouerou/swiperow/internal/config"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/helpbindings"
	"github.com/llehouerou/swiperow/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Cursor blinks and other popup internals.
	return m, m.popups.Update(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.SetSize(msg.Width, msg.Height)
	m.popups.SetSize(msg.Width, msg.Height)
	for _, e := range m.rows {
		m.measure(e)
	}
	m.cursor.EnsureVisible(len(m.visible), m.listHeight())
	// Measurement moves snap points, so open rows may need to settle again.
	if m.animating() {
		return m, m.startFrames()
	}
	return m, nil
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	m.advance(time.Time(msg))
	if m.animating() {
		return m, frameCmd(m.uiCfg.FrameInterval())
	}
	m.ticking = false
	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	next := waitForConfig(m.configCh)
	if msg.Err != nil {
		m.fail(errmsg.OpConfigReload, "", msg.Err)
		return m, next
	}
	m.applyConfig(msg.Config)
	n := m.rebuildIdleRows()
	m.setStatus(fmt.Sprintf("Config reloaded, %d rows rebuilt", n))
	return m, next
}

// applyConfig switches to cfg. List and UI settings apply at once;
// gesture settings apply from the next press.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.uiCfg = cfg.GetUIConfig()
	m.list.SetAllowMultiOpen(cfg.AllowMultiOpen())
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)
		return m, nil
	case textinput.Result:
		m.popups.Hide(popupctl.TextInput)
		mode, _ := a.Context.(popupctl.InputMode)
		return m.handleInputResult(mode, a)
	}
	return m, nil
}

func (m Model) handleInputResult(mode popupctl.InputMode, r textinput.Result) (tea.Model, tea.Cmd) {
	switch mode {
	case popupctl.InputFilter:
		if r.Canceled {
			m.setFilter("")
		} else {
			m.setFilter(r.Text)
		}
	case popupctl.InputNewItem:
		if r.Canceled || r.Text == "" {
			return m, nil
		}
		m.addItem(r.Text)
	case popupctl.InputNone:
	}
	return m, nil
}
