package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/swiperow/internal/state"
)

func TestPrintJournal(t *testing.T) {
	store := state.NewMock()

	var out bytes.Buffer
	require.NoError(t, printJournal(&out, store, 5))
	assert.Equal(t, "no swipe events recorded\n", out.String())

	store.RecordEvent(state.SwipeEvent{ItemID: 3, Side: "leading", Action: "opened", Method: "swipe", At: time.Now()})
	store.RecordEvent(state.SwipeEvent{ItemID: 4, Side: "trailing", Action: "closed", Method: "transition", At: time.Now()})

	out.Reset()
	require.NoError(t, printJournal(&out, store, 5))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "item 4")
	assert.Contains(t, string(lines[0]), "trailing")
	assert.Contains(t, string(lines[1]), "opened")
	assert.Contains(t, string(lines[1]), "swipe")
}

func TestDemoItemsSeed(t *testing.T) {
	store := state.NewMock()
	seeded, err := store.SeedIfEmpty(demoItems)
	require.NoError(t, err)
	assert.True(t, seeded)

	items, err := store.ListItems()
	require.NoError(t, err)
	require.Len(t, items, len(demoItems))
	assert.Equal(t, demoItems[0].Title, items[0].Title)
}
