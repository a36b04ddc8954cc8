package popupctl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/swiperow/internal/ui/action"
	"github.com/llehouerou/swiperow/internal/ui/testutil"
	"github.com/llehouerou/swiperow/internal/ui/textinput"
)

func newManager() *Manager {
	p := New()
	p.SetSize(80, 24)
	return p
}

func TestActivePopupPriority(t *testing.T) {
	p := newManager()
	assert.Equal(t, None, p.ActivePopup())

	p.ShowTextInput(InputFilter, "Filter", "", "")
	assert.Equal(t, TextInput, p.ActivePopup())

	p.ShowHelp()
	assert.Equal(t, Help, p.ActivePopup())

	p.ShowError("boom")
	assert.Equal(t, Error, p.ActivePopup())

	p.Hide(Error)
	p.Hide(Help)
	assert.Equal(t, TextInput, p.ActivePopup())

	p.Hide(TextInput)
	assert.Equal(t, None, p.ActivePopup())
	assert.Equal(t, InputNone, p.InputMode())
}

func TestErrorDismissedByAnyKey(t *testing.T) {
	p := newManager()
	p.ShowError("boom")

	handled, cmd := p.HandleKey(testutil.Key("x"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, p.ErrorMsg())
}

func TestHandleKeyWithoutPopup(t *testing.T) {
	p := newManager()
	handled, _ := p.HandleKey(testutil.Key("x"))
	assert.False(t, handled)
}

func TestTextInputRouting(t *testing.T) {
	p := newManager()
	p.ShowTextInput(InputNewItem, "New item", "", "Title")

	for _, r := range "milk" {
		p.HandleKey(testutil.Key(string(r)))
	}
	assert.Equal(t, "milk", p.InputValue())

	handled, cmd := p.HandleKey(testutil.Key("enter"))
	assert.True(t, handled)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	assert.True(t, ok)
	result, ok := msg.Action.(textinput.Result)
	assert.True(t, ok)
	assert.Equal(t, "milk", result.Text)
	assert.Equal(t, InputNewItem, result.Context)
}

func TestRenderOverlay(t *testing.T) {
	p := newManager()
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")

	assert.Equal(t, base, p.RenderOverlay(base))

	p.ShowError("disk full")
	out := testutil.StripANSI(p.RenderOverlay(base))
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Press any key")
	assert.Len(t, strings.Split(out, "\n"), 24)
}
