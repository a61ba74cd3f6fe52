package contracts

import "fmt"

// CommandKind is the meaning of one decoded input byte.
type CommandKind uint8

const (
	// Unmapped input has no meaning and is ignored.
	Unmapped CommandKind = iota
	// NoteStart starts the note at Interval semitones above the octave base.
	NoteStart
	// NoteStop stops the note at Interval semitones above the octave base.
	NoteStop
	// OctaveUp raises the octave by one, up to MaxOctave.
	OctaveUp
	// OctaveDown lowers the octave by one, down to MinOctave.
	OctaveDown
	// Pause hands the keyboard back to the console.
	Pause
	// Resume takes the keyboard back after a Pause.
	Resume
	// Exit restores the console and ends the process.
	Exit
)

const (
	MinOctave   = 0
	MaxOctave   = 10
	MaxInterval = 17
)

var kindNames = [...]string{
	Unmapped:   "unmapped",
	NoteStart:  "note-on",
	NoteStop:   "note-off",
	OctaveUp:   "octave-up",
	OctaveDown: "octave-down",
	Pause:      "pause",
	Resume:     "resume",
	Exit:       "exit",
}

func (k CommandKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", uint8(k))
}

// Command is the decoded form of a single input byte.
// Interval is only meaningful for NoteStart and NoteStop.
type Command struct {
	Kind     CommandKind
	Interval uint8
}

func (c Command) String() string {
	if c.Kind == NoteStart || c.Kind == NoteStop {
		return fmt.Sprintf("%s(%d)", c.Kind, c.Interval)
	}
	return c.Kind.String()
}

// KeymapMode is the console keyboard delivery mode.
type KeymapMode int32

const (
	// KeymapRaw delivers raw scancodes, one byte per press or release.
	KeymapRaw KeymapMode = iota
	// KeymapTranslated delivers characters, as a normal console does.
	KeymapTranslated
)

func (m KeymapMode) String() string {
	if m == KeymapRaw {
		return "raw"
	}
	return "translated"
}
