package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/swiperow/internal/config"
)

// frameCmd schedules the next display frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForConfig blocks on the next config reload. It is re-armed after
// every ConfigReloadedMsg.
func waitForConfig(ch <-chan ConfigReloadedMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// WatchConfig starts watching the config files and returns the channel
// to pass to WithConfigUpdates. The watcher stops when ctx is done.
func WatchConfig(ctx context.Context, paths []string) (<-chan ConfigReloadedMsg, error) {
	ch := make(chan ConfigReloadedMsg, 1)
	err := config.Watch(ctx, paths, func(cfg *config.Config, err error) {
		select {
		case ch <- ConfigReloadedMsg{Config: cfg, Err: err}:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}
