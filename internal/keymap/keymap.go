package keymap

// Binding maps keys to an action for one help context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "list", "row", "rows"
}

// Bindings contains every key binding, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionFilter, []string{"/"}, "Filter items", "global"},
	{ActionNewItem, []string{"n"}, "New item", "global"},
	{ActionRestore, []string{"u"}, "Restore last archived item", "global"},
	{ActionToggleMultiOpen, []string{"m"}, "Allow several open rows", "global"},

	// List navigation
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "list"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "list"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "list"},

	// Cursor row
	{ActionOpenLeading, []string{"l", "right"}, "Reveal leading panel", "row"},
	{ActionOpenTrailing, []string{"h", "left"}, "Reveal trailing panel", "row"},
	{ActionClose, []string{"c", "esc"}, "Close row", "row"},
	{ActionActivate, []string{"enter", " "}, "Run revealed action", "row"},

	// All rows
	{ActionOpenAllLeading, []string{"L"}, "Reveal every leading panel", "rows"},
	{ActionOpenAllTrailing, []string{"H"}, "Reveal every trailing panel", "rows"},
	{ActionCloseAll, []string{"C"}, "Close every row", "rows"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
