//go:build linux
// +build linux

package midilinux

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/tmk/internal/midi/wire"
	"github.com/leandrodaf/tmk/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"go.uber.org/multierr"
)

// Error definitions for MIDI output issues.
var (
	ErrDestinationNotFound = errors.New("MIDI destination not found")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI destination")
	ErrCreateOutputPort    = errors.New("error creating output port")
	ErrClientClosed        = errors.New("MIDI client closed")
)

// ClientMid writes note events to ALSA through rtmidi. Every event goes to a
// virtual output port other programs can subscribe to, and to a directly
// connected destination if one was given.
type ClientMid struct {
	logger  contracts.Logger
	drv     *rtmididrv.Driver
	virtual drivers.Out
	dest    drivers.Out
	sends   []func(midi.Message) error
	mu      sync.Mutex // Serializes writes with Connect and Close.
	closed  bool
	once    sync.Once
}

// NewMIDIClient opens the rtmidi driver and a virtual output port named after
// options.PortName.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.Port, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	out, err := drv.OpenVirtualOut(options.PortName)
	if err != nil {
		_ = drv.Close()
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		_ = drv.Close()
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	options.Logger.Info("MIDI client successfully created",
		options.Logger.Field().String("port", out.String()))

	return &ClientMid{
		logger:  options.Logger,
		drv:     drv,
		virtual: out,
		sends:   []func(midi.Message) error{send},
	}, nil
}

// ListDestinations lists the output ports the driver can see.
func (m *ClientMid) ListDestinations() ([]contracts.DeviceInfo, error) {
	outs, err := m.drv.Outs()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI outputs: %w", err)
	}

	devices := make([]contracts.DeviceInfo, 0, len(outs))
	for _, out := range outs {
		devices = append(devices, contracts.DeviceInfo{
			Number:  out.Number(),
			Name:    out.String(),
			Address: wire.Address(out.String()),
		})
	}
	return devices, nil
}

// Connect opens the output port at dest and sends every following event to it
// as well.
func (m *ClientMid) Connect(dest contracts.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClientClosed
	}

	outs, err := m.drv.Outs()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI outputs: %w", err)
	}

	want := dest.String()
	var found drivers.Out
	for _, out := range outs {
		if wire.Address(out.String()) == want {
			found = out
			break
		}
	}
	if found == nil {
		m.logger.Error(ErrDestinationNotFound.Error(), m.logger.Field().String("destination", want))
		return fmt.Errorf("%w: %s", ErrDestinationNotFound, want)
	}

	send, err := midi.SendTo(found)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error(), m.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	if m.dest != nil {
		_ = m.dest.Close()
		m.sends = m.sends[:1]
	}
	m.dest = found
	m.sends = append(m.sends, send)
	m.logger.Info("MIDI destination connected",
		m.logger.Field().String("destination", want),
		m.logger.Field().String("name", found.String()))
	return nil
}

// Write sends one note event to every connected output.
func (m *ClientMid) Write(ev contracts.NoteEvent) error {
	msg, err := wire.Message(ev)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClientClosed
	}
	for _, send := range m.sends {
		err = multierr.Append(err, send(msg))
	}
	return err
}

// Close closes the ports and the driver. Later calls do nothing.
func (m *ClientMid) Close() error {
	var err error
	m.once.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.closed = true
		m.sends = nil
		err = m.drv.Close()
		m.logger.Info("MIDI client closed")
	})
	return err
}
