// Package console drives the terminal and keyboard mode of a Linux virtual
// console.
package console

import "errors"

var (
	// ErrNotTerminal is returned when the file is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrNotSaved is returned by Restore before Save succeeded.
	ErrNotSaved = errors.New("console settings were never saved")
	// ErrUnsupported is returned on platforms without virtual console keyboard modes.
	ErrUnsupported = errors.New("console keyboard modes are not supported on this platform")
)
