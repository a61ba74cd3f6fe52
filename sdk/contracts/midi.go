package contracts

import "errors"

// ErrPitchOutOfRange is returned by a Port asked to write a pitch outside 0-127.
var ErrPitchOutOfRange = errors.New("pitch outside MIDI range")

const (
	// DefaultChannel is the fixed MIDI channel (zero-based wire value) every note is sent on.
	DefaultChannel uint8 = 1
	// VelocityOn is the velocity of every note-on.
	VelocityOn uint8 = 127
	// VelocityOff is the velocity of every note-off.
	VelocityOff uint8 = 0
)

// NoteEvent is a note-on or note-off produced by the keyboard.
//
// Pitch is kept as an int: the keyboard can compute values above 127 at the top
// octave and it is up to the Port to refuse them.
type NoteEvent struct {
	Pitch    int   // 12 * octave + interval.
	Velocity uint8 // VelocityOn or VelocityOff.
	Channel  uint8 // Zero-based MIDI channel.
	On       bool  // True for note-on, false for note-off.
}

// Command returns the MIDI status command matching the event.
func (e NoteEvent) Command() MIDICommand {
	if e.On {
		return NoteOn
	}
	return NoteOff
}

// Port is a platform MIDI output.
type Port interface {
	Write(ev NoteEvent) error                 // Delivers one event; may block on the driver.
	Connect(dest Destination) error           // Adds a direct destination next to the virtual port.
	ListDestinations() ([]DeviceInfo, error) // Lists the outputs the driver can see.
	Close() error                             // Releases driver resources.
}

// Sink accepts note events without blocking the caller.
type Sink interface {
	Send(ev NoteEvent) // Fire-and-forget; delivery failures are logged, never returned.
	Close() error      // Flushes pending events and closes the underlying Port.
}
