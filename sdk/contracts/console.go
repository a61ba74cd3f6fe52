package contracts

import "io"

// Console is the terminal the keyboard is read from. It covers both the raw
// terminal mode service and the console keymap service.
//
// Reads return one unit of input at a time in whatever form the current
// keymap mode delivers.
type Console interface {
	io.Reader

	Save() error                         // Records the terminal configuration and keyboard mode.
	EnterRaw() error                     // Unbuffered, unechoed input.
	Restore() error                      // Puts back what Save recorded.
	SetKeymapMode(mode KeymapMode) error // Switches scancode or character delivery.
}
