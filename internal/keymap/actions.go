// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit            Action = "quit"
	ActionHelp            Action = "help"
	ActionFilter          Action = "filter"
	ActionNewItem         Action = "new_item"
	ActionToggleMultiOpen Action = "toggle_multi_open"
	ActionRestore         Action = "restore" // bring back the last archived item

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Row actions on the cursor row
	ActionOpenLeading  Action = "open_leading"
	ActionOpenTrailing Action = "open_trailing"
	ActionClose        Action = "close"
	ActionActivate     Action = "activate" // run the action of the open panel

	// Row actions on every row
	ActionOpenAllLeading  Action = "open_all_leading"
	ActionOpenAllTrailing Action = "open_all_trailing"
	ActionCloseAll        Action = "close_all"
)
