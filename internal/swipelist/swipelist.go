// Package swipelist coordinates the swipeable rows of one list: keyed
// imperative control, bulk open/close, and closing other rows when one
// starts opening.
package swipelist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

// ErrUnknownKey is returned for operations on keys that are not mounted.
var ErrUnknownKey = errors.New("unknown row key")

// Item is the imperative surface of a row.
type Item interface {
	OpenLeading()
	OpenTrailing()
	Close()
}

// Compile-time check that rows satisfy Item.
var _ Item = (*swipeable.Swipeable)(nil)

// ChangeFunc receives a row change together with the row key.
type ChangeFunc func(key string, c swipeable.Change)

// List is a registry of mounted rows keyed by item key. It is not safe
// for concurrent use.
type List struct {
	items          map[string]Item
	allowMultiOpen bool
	dragging       string
	onChange       ChangeFunc
	logger         *slog.Logger
}

// Option configures a List.
type Option func(*List)

// WithAllowMultiOpen controls whether several rows may be open at once.
// It defaults to true.
func WithAllowMultiOpen(allow bool) Option {
	return func(l *List) { l.allowMultiOpen = allow }
}

// WithChangeFunc forwards every row change to fn after coordination.
func WithChangeFunc(fn ChangeFunc) Option {
	return func(l *List) { l.onChange = fn }
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns an empty list.
func New(opts ...Option) *List {
	l := &List{
		items:          make(map[string]Item),
		allowMultiOpen: true,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// AllowMultiOpen reports the current policy.
func (l *List) AllowMultiOpen() bool { return l.allowMultiOpen }

// SetAllowMultiOpen changes the policy for subsequent changes.
func (l *List) SetAllowMultiOpen(allow bool) { l.allowMultiOpen = allow }

// Mount registers a row under key, replacing any row already there.
func (l *List) Mount(key string, item Item) {
	l.items[key] = item
}

// Unmount removes the row registered under key.
func (l *List) Unmount(key string) {
	delete(l.items, key)
	if l.dragging == key {
		l.dragging = ""
	}
}

// Len returns the number of mounted rows.
func (l *List) Len() int { return len(l.items) }

// Keys returns mounted keys in sorted order.
func (l *List) Keys() []string {
	keys := make([]string, 0, len(l.items))
	for k := range l.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Listener returns the change listener to give the row mounted under key.
func (l *List) Listener(key string) func(swipeable.Change) {
	return func(c swipeable.Change) {
		l.handleChange(key, c)
	}
}

func (l *List) handleChange(key string, c swipeable.Change) {
	if c.Action == swipeable.OpeningThresholdPassed && !l.allowMultiOpen {
		l.closeOthers(key)
	}
	if l.onChange != nil {
		l.onChange(key, c)
	}
}

func (l *List) closeOthers(key string) {
	for _, k := range l.Keys() {
		if k == key {
			continue
		}
		l.items[k].Close()
	}
	l.logger.Debug("closed other rows", "key", key)
}

func (l *List) lookup(key string) (Item, error) {
	item, ok := l.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return item, nil
}

// OpenLeading opens the leading panel of one row.
func (l *List) OpenLeading(key string) error {
	item, err := l.lookup(key)
	if err != nil {
		return err
	}
	item.OpenLeading()
	return nil
}

// OpenTrailing opens the trailing panel of one row.
func (l *List) OpenTrailing(key string) error {
	item, err := l.lookup(key)
	if err != nil {
		return err
	}
	item.OpenTrailing()
	return nil
}

// Close closes one row.
func (l *List) Close(key string) error {
	item, err := l.lookup(key)
	if err != nil {
		return err
	}
	item.Close()
	return nil
}

// OpenAllLeading opens the leading panel of every row.
func (l *List) OpenAllLeading() {
	for _, k := range l.Keys() {
		l.items[k].OpenLeading()
	}
}

// OpenAllTrailing opens the trailing panel of every row.
func (l *List) OpenAllTrailing() {
	for _, k := range l.Keys() {
		l.items[k].OpenTrailing()
	}
}

// CloseAll closes every row.
func (l *List) CloseAll() {
	for _, k := range l.Keys() {
		l.items[k].Close()
	}
}

// BeginDrag claims the pointer for key. It returns false while another
// row is being dragged.
func (l *List) BeginDrag(key string) bool {
	if l.dragging != "" && l.dragging != key {
		return false
	}
	if _, ok := l.items[key]; !ok {
		return false
	}
	l.dragging = key
	return true
}

// EndDrag releases the pointer claim held by key.
func (l *List) EndDrag(key string) {
	if l.dragging == key {
		l.dragging = ""
	}
}

// Dragging returns the key of the row being dragged, if any.
func (l *List) Dragging() (string, bool) {
	return l.dragging, l.dragging != ""
}

// RowDirection returns the swipe axis for rows of a list scrolling along
// listDirection. Rows always swipe across the scroll axis.
func RowDirection(listDirection gesture.Direction) gesture.Direction {
	if listDirection == gesture.Horizontal {
		return gesture.Vertical
	}
	return gesture.Horizontal
}
