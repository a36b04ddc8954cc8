package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/ui/helpbindings"
	"github.com/llehouerou/swiperow/internal/ui/overlay"
	"github.com/llehouerou/swiperow/internal/ui/popup"
	"github.com/llehouerou/swiperow/internal/ui/textinput"
)

var sizes = map[Type]popup.SizeConfig{
	Help:      popup.SizeAuto,
	TextInput: popup.SizeInput,
	Error:     {MaxWidth: 70},
}

// Manager owns the open popups and the screen they are drawn on.
type Manager struct {
	open          map[Type]popup.Popup
	mode          InputMode
	width, height int
}

func New() *Manager {
	return &Manager{open: make(map[Type]popup.Popup)}
}

// SetSize resizes the screen and every open popup.
func (p *Manager) SetSize(width, height int) {
	p.width, p.height = width, height
	for t, pop := range p.open {
		pop.SetSize(p.contentSize(t))
	}
}

func (p *Manager) IsVisible(t Type) bool {
	_, ok := p.open[t]
	return ok
}

// ActivePopup returns the topmost open popup, or None.
func (p *Manager) ActivePopup() Type {
	for i := len(stacking) - 1; i >= 0; i-- {
		if p.IsVisible(stacking[i]) {
			return stacking[i]
		}
	}
	return None
}

// Show opens pop as t, replacing any popup of the same type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(t))
	p.open[t] = pop
	return pop.Init()
}

func (p *Manager) Hide(t Type) {
	delete(p.open, t)
	if t == TextInput {
		p.mode = InputNone
	}
}

func (p *Manager) contentSize(t Type) (width, height int) {
	size := sizes[t]
	switch {
	case size.WidthPct > 0:
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	case size.MaxWidth > 0:
		return min(p.width, size.MaxWidth) - 6, p.height
	default:
		return p.width, p.height
	}
}

func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New()
	return p.Show(Help, &help)
}

// ShowTextInput opens the input popup. mode comes back as the Context of
// the textinput.Result.
func (p *Manager) ShowTextInput(mode InputMode, title, value, placeholder string) tea.Cmd {
	ti := textinput.New()
	ti.Start(title, value, placeholder, mode)
	cmd := p.Show(TextInput, &ti)
	p.mode = mode
	return cmd
}

func (p *Manager) ShowError(msg string) {
	p.Show(Error, &errorBox{msg: msg})
}

func (p *Manager) InputMode() InputMode { return p.mode }

// InputValue returns the text typed so far in the input popup.
func (p *Manager) InputValue() string {
	if ti, ok := p.open[TextInput].(*textinput.Model); ok {
		return ti.Value()
	}
	return ""
}

func (p *Manager) ErrorMsg() string {
	if e, ok := p.open[Error].(*errorBox); ok {
		return e.msg
	}
	return ""
}

// HandleKey gives msg to the topmost popup and reports whether one was
// open. Any key dismisses an error.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	switch active {
	case None:
		return false, nil
	case Error:
		p.Hide(Error)
		return true, nil
	}
	return true, p.forward(active, msg)
}

// Update forwards other messages, such as cursor blinks, to the topmost
// popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	return p.forward(p.ActivePopup(), msg)
}

func (p *Manager) forward(t Type, msg tea.Msg) tea.Cmd {
	pop, ok := p.open[t]
	if !ok {
		return nil
	}
	updated, cmd := pop.Update(msg)
	p.open[t] = updated
	return cmd
}

// RenderOverlay draws the open popups over base, bottom layer first.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range stacking {
		if pop, ok := p.open[t]; ok {
			box := popup.RenderBordered(pop.View(), p.width, p.height, sizes[t])
			base = overlay.Compose(base, box, p.width)
		}
	}
	return base
}
