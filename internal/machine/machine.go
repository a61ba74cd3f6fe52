// Package machine turns decoded keyboard commands into note events, octave
// changes and mode switches.
package machine

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/leandrodaf/tmk/internal/keymap"
	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

// ErrInputClosed is returned by Run when the input can no longer be read.
var ErrInputClosed = errors.New("keyboard input closed")

// InitialOctave is the octave every session starts in.
const InitialOctave = 5

// Mode is the machine's input mode.
type Mode int

const (
	// Playing turns keys into notes.
	Playing Mode = iota
	// Paused leaves the keyboard to the console until resumed.
	Paused
)

func (m Mode) String() string {
	if m == Playing {
		return "playing"
	}
	return "paused"
}

// NoteSink receives note events. Send must not block.
type NoteSink interface {
	Send(ev contracts.NoteEvent)
}

// Controller owns the console. RequestKeymap switches keyboard delivery;
// Terminate restores the console and ends the process.
type Controller interface {
	RequestKeymap(mode contracts.KeymapMode)
	Terminate(code int)
}

// Machine is the playing/paused state machine. It is driven by a single
// reader; accessors are safe from other goroutines.
type Machine struct {
	sink    NoteSink
	ctl     Controller
	logger  contracts.Logger
	status  io.Writer
	channel uint8

	mu     sync.Mutex
	octave int
	mode   Mode
	done   bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger.
func WithLogger(l contracts.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

// WithStatus sets where the Pausing/Resuming/Exiting lines are printed.
func WithStatus(w io.Writer) Option {
	return func(m *Machine) {
		m.status = w
	}
}

// New returns a machine in octave 5, playing.
func New(sink NoteSink, ctl Controller, opts ...Option) *Machine {
	m := &Machine{
		sink:    sink,
		ctl:     ctl,
		channel: contracts.DefaultChannel,
		octave:  InitialOctave,
		mode:    Playing,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logger.NewNopLogger()
	}
	if m.status == nil {
		m.status = io.Discard
	}
	return m
}

// Octave returns the current octave.
func (m *Machine) Octave() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.octave
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Done reports whether an Exit command has been applied.
func (m *Machine) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Run reads the input one byte at a time and feeds it to the machine until
// Exit is applied. Read failures end the loop with ErrInputClosed.
func (m *Machine) Run(r io.Reader) error {
	var buf [1]byte
	for !m.Done() {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		m.Feed(buf[0])
	}
	return nil
}

// Feed decodes b with the table for the current mode and applies it.
func (m *Machine) Feed(b byte) {
	m.mu.Lock()
	eff := m.step(m.table().Decode(b))
	m.mu.Unlock()
	m.perform(eff)
}

// Apply applies one command.
func (m *Machine) Apply(cmd contracts.Command) {
	m.mu.Lock()
	eff := m.step(cmd)
	m.mu.Unlock()
	m.perform(eff)
}

func (m *Machine) table() *keymap.Table {
	if m.mode == Playing {
		return keymap.Scancodes
	}
	return keymap.Translated
}

// effect is what a transition asks of the outside world. It is carried out
// after the state lock is released.
type effect struct {
	note      *contracts.NoteEvent
	keymap    *contracts.KeymapMode
	status    string
	terminate bool
}

// step is the transition function. Callers hold mu.
func (m *Machine) step(cmd contracts.Command) effect {
	if m.done {
		return effect{}
	}

	if m.mode == Paused {
		switch cmd.Kind {
		case contracts.Resume:
			m.mode = Playing
			raw := contracts.KeymapRaw
			return effect{keymap: &raw, status: "Resuming"}
		case contracts.Exit:
			m.done = true
			return effect{status: "Exiting", terminate: true}
		}
		return effect{}
	}

	switch cmd.Kind {
	case contracts.NoteStart, contracts.NoteStop:
		on := cmd.Kind == contracts.NoteStart
		ev := contracts.NoteEvent{
			Pitch:    12*m.octave + int(cmd.Interval),
			Velocity: contracts.VelocityOff,
			Channel:  m.channel,
			On:       on,
		}
		if on {
			ev.Velocity = contracts.VelocityOn
		}
		return effect{note: &ev}
	case contracts.OctaveUp:
		if m.octave < contracts.MaxOctave {
			m.octave++
		}
	case contracts.OctaveDown:
		if m.octave > contracts.MinOctave {
			m.octave--
		}
	case contracts.Pause:
		m.mode = Paused
		translated := contracts.KeymapTranslated
		return effect{keymap: &translated, status: "Pausing"}
	case contracts.Exit:
		m.done = true
		return effect{status: "Exiting", terminate: true}
	}
	return effect{}
}

func (m *Machine) perform(eff effect) {
	if eff.note != nil {
		m.logger.Debug("note",
			m.logger.Field().Int("pitch", eff.note.Pitch),
			m.logger.Field().Bool("on", eff.note.On))
		m.sink.Send(*eff.note)
	}
	if eff.status != "" {
		m.logger.Info(eff.status)
		fmt.Fprintf(m.status, "%s\r\n", eff.status)
	}
	if eff.keymap != nil {
		m.ctl.RequestKeymap(*eff.keymap)
	}
	if eff.terminate {
		m.ctl.Terminate(0)
	}
}
