// Package main implements tmk, a MIDI keyboard for the Linux text console.
// The letter rows of the PC keyboard play notes on a virtual ALSA output port
// that synthesizers can subscribe to.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
