// Package wire converts note events to MIDI messages and reads ALSA port
// addresses out of driver port names.
package wire

import (
	"fmt"
	"strings"

	"github.com/leandrodaf/tmk/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
)

// Message builds the channel message for ev. Pitches outside 0-127 are
// refused with contracts.ErrPitchOutOfRange.
func Message(ev contracts.NoteEvent) (midi.Message, error) {
	if ev.Pitch < 0 || ev.Pitch > 127 {
		return nil, fmt.Errorf("%w: %d", contracts.ErrPitchOutOfRange, ev.Pitch)
	}
	key := uint8(ev.Pitch)
	if ev.On {
		return midi.NoteOn(ev.Channel, key, ev.Velocity), nil
	}
	return midi.NoteOff(ev.Channel, key), nil
}

// Address returns the trailing sequencer address of an ALSA port name such as
// "Midi Through:Midi Through Port-0 14:0", or "" if there is none.
func Address(name string) string {
	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return ""
	}
	if _, err := contracts.ParseDestination(name[i+1:]); err != nil {
		return ""
	}
	return name[i+1:]
}
