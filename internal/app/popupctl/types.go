// Package popupctl manages the modal popups drawn over the row list.
package popupctl

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
	TextInput
	Error
)

// stacking lists popups from the bottom layer up. The topmost visible one
// takes the keyboard.
var stacking = [...]Type{TextInput, Help, Error}

// InputMode is what a text input popup is collecting.
type InputMode int

const (
	InputNone InputMode = iota
	// InputNewItem collects the title of a new item.
	InputNewItem
	// InputFilter collects the row filter query, applied as it is typed.
	InputFilter
)
