// Package keymap decodes console input bytes into keyboard commands.
//
// Two tables exist because the console delivers different things depending on
// its keyboard mode: raw PC scancodes while playing, plain characters while
// paused.
package keymap

import "github.com/leandrodaf/tmk/sdk/contracts"

// Table maps every possible input byte to exactly one command.
type Table [256]contracts.Command

// Decode returns the command for b. Bytes without a meaning decode to Unmapped.
func (t *Table) Decode(b byte) contracts.Command {
	return t[b]
}

// noteKey is one chromatic position on the keyboard. Press and release codes
// are listed separately; they are not derived from each other.
type noteKey struct {
	down, up byte
}

// notes holds intervals 0-17, starting on the home row at 'a'.
var notes = [contracts.MaxInterval + 1]noteKey{
	{0x1e, 0x9e}, // a  C
	{0x11, 0x91}, // w  C#
	{0x1f, 0x9f}, // s  D
	{0x12, 0x92}, // e  D#
	{0x20, 0xa0}, // d  E
	{0x21, 0xa1}, // f  F
	{0x14, 0x94}, // t  F#
	{0x22, 0xa2}, // g  G
	{0x15, 0x95}, // y  G#
	{0x23, 0xa3}, // h  A
	{0x16, 0x96}, // u  A#
	{0x24, 0xa4}, // j  B
	{0x25, 0xa5}, // k  C
	{0x18, 0x98}, // o  C#
	{0x26, 0xa6}, // l  D
	{0x19, 0x99}, // p  D#
	{0x27, 0xa7}, // ;  E
	{0x28, 0xa8}, // '  F
}

const (
	scanOctaveDown = 0xac // z released
	scanOctaveUp   = 0xad // x released
	scanExit       = 0x90 // q released
	scanPause      = 0x0f // tab pressed

	charResume = '\t'
	charExit   = 'q'
)

var (
	// Scancodes is used while the console delivers raw scancodes.
	Scancodes = buildScancodes()
	// Translated is used while the console delivers characters.
	Translated = buildTranslated()
)

func buildScancodes() *Table {
	t := new(Table)
	for i, k := range notes {
		t[k.down] = contracts.Command{Kind: contracts.NoteStart, Interval: uint8(i)}
		t[k.up] = contracts.Command{Kind: contracts.NoteStop, Interval: uint8(i)}
	}
	t[scanOctaveDown] = contracts.Command{Kind: contracts.OctaveDown}
	t[scanOctaveUp] = contracts.Command{Kind: contracts.OctaveUp}
	t[scanExit] = contracts.Command{Kind: contracts.Exit}
	t[scanPause] = contracts.Command{Kind: contracts.Pause}
	return t
}

func buildTranslated() *Table {
	t := new(Table)
	t[charResume] = contracts.Command{Kind: contracts.Resume}
	t[charExit] = contracts.Command{Kind: contracts.Exit}
	return t
}

// Lookup returns the table matching the console keyboard mode.
func Lookup(mode contracts.KeymapMode) *Table {
	if mode == contracts.KeymapRaw {
		return Scancodes
	}
	return Translated
}
