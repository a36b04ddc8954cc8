// internal/app/app.go
package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/app/popupctl"
	"github.com/llehouerou/swiperow/internal/config"
	"github.com/llehouerou/swiperow/internal/errmsg"
	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/keymap"
	"github.com/llehouerou/swiperow/internal/state"
	"github.com/llehouerou/swiperow/internal/swipeable"
	"github.com/llehouerou/swiperow/internal/swipelist"
	"github.com/llehouerou/swiperow/internal/ui"
	"github.com/llehouerou/swiperow/internal/ui/cursor"
	"github.com/llehouerou/swiperow/internal/ui/headerbar"
)

// borderWidth is the horizontal space taken by the list border.
const borderWidth = 2

// Model is the root application model.
type Model struct {
	ui.Base

	cfg    *config.Config
	uiCfg  config.UIConfig
	store  state.Interface
	logger *slog.Logger
	now    func() time.Time

	items   []state.Item // unarchived, newest first
	visible []int        // indices into items matching the filter
	rows    map[string]*rowEntry
	list    *swipelist.List
	changes *[]rowChange

	cursor  cursor.Cursor
	keys    *keymap.Resolver
	popups  *popupctl.Manager
	tracker *gesture.Tracker
	press   *pressState

	filter       string
	lastArchived int64
	status       string
	statusErr    bool
	ticking      bool
	configCh     <-chan ConfigReloadedMsg
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now for pointer timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithConfigUpdates makes the model apply configs received on ch.
func WithConfigUpdates(ch <-chan ConfigReloadedMsg) Option {
	return func(m *Model) { m.configCh = ch }
}

// New creates the application model and loads the items from store.
func New(cfg *config.Config, store state.Interface, opts ...Option) (Model, error) {
	changes := new([]rowChange)
	m := Model{
		cfg:     cfg,
		uiCfg:   cfg.GetUIConfig(),
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		rows:    make(map[string]*rowEntry),
		changes: changes,
		cursor:  cursor.New(ui.ScrollMargin),
		keys:    keymap.Default(),
		popups:  popupctl.New(),
	}
	for _, o := range opts {
		o(&m)
	}

	m.list = swipelist.New(
		swipelist.WithAllowMultiOpen(cfg.AllowMultiOpen()),
		swipelist.WithLogger(m.logger),
		swipelist.WithChangeFunc(func(key string, c swipeable.Change) {
			*changes = append(*changes, rowChange{key: key, change: c})
		}),
	)

	if err := m.loadItems(); err != nil {
		return Model{}, fmt.Errorf("load items: %w", err)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForConfig(m.configCh)
}

// listHeight is the number of row lines inside the border.
func (m Model) listHeight() int {
	return max(m.Height()-headerbar.Height-ui.BorderHeight-ui.StatusHeight, 0)
}

// rowWidth is the width of one row inside the border.
func (m Model) rowWidth() int {
	return max(m.Width()-borderWidth, 0)
}

// listTop is the screen line of the first row.
func (m Model) listTop() int {
	return headerbar.Height + ui.BorderHeight/2
}

// trackerConfig returns the pan recognizer settings. Rows in the list
// always swipe across its vertical scroll axis.
func (m Model) trackerConfig() gesture.TrackerConfig {
	tc := m.cfg.TrackerConfig()
	tc.Direction = swipelist.RowDirection(gesture.Vertical)
	return tc
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// fail shows err in the status line.
// subject names what op acted on and may be empty.
func (m *Model) fail(op errmsg.Op, subject string, err error) {
	m.logger.Debug("operation failed", "op", string(op), "subject", subject, "err", err)
	m.status = errmsg.FormatWith(op, subject, err)
	m.statusErr = true
}

// failHard shows err in the error popup. It is used when the list on
// screen may no longer match the store.
func (m *Model) failHard(op errmsg.Op, err error) {
	m.logger.Debug("operation failed", "op", string(op), "err", err)
	m.popups.ShowError(errmsg.Format(op, err))
}
