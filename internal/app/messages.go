// Package app contains the bubbletea root model that hosts the swipeable
// rows of the demo inbox.
package app

import (
	"time"

	"github.com/llehouerou/swiperow/internal/config"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

// FrameMsg advances every animating row to the given time.
type FrameMsg time.Time

// ConfigReloadedMsg carries a config reread after one of its files changed.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// rowChange is a row notification waiting to be journalled.
type rowChange struct {
	key    string
	change swipeable.Change
}
