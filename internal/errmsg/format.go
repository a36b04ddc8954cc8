// Package errmsg turns failed operations into the one-line messages shown
// in the status line and the error popup.
package errmsg

import "fmt"

// Op names an operation in the form "Failed to <op>".
type Op string

const (
	OpItemsLoad   Op = "load items"
	OpItemAdd     Op = "add item"
	OpItemRead    Op = "update read state"
	OpItemArchive Op = "archive item"
	OpItemRestore Op = "restore item"

	OpJournalLoad  Op = "load swipe journal"
	OpJournalFlush Op = "write swipe journal"

	OpRowControl Op = "control row"

	OpConfigLoad   Op = "load config"
	OpConfigReload Op = "reload config"
	OpConfigWatch  Op = "watch config"

	OpInitialize Op = "initialize application"
)

// Format returns "" for a nil err.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith quotes subject after the operation when it is not empty.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
