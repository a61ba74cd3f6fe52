//go:build !linux
// +build !linux

package midilinux

import (
	"errors"

	"github.com/leandrodaf/tmk/sdk/contracts"
)

var errUnavailable = errors.New("MIDI output is not available on this platform")

type DummyMIDIClient struct {
	logger contracts.Logger
}

func NewMIDIClient(options *contracts.ClientOptions) (contracts.Port, error) {
	options.Logger.Info("Using dummy MIDI client for non-Linux system")
	return &DummyMIDIClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyMIDIClient) ListDestinations() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDestinations called on dummy MIDI client")
	return nil, errUnavailable
}

func (m *DummyMIDIClient) Connect(dest contracts.Destination) error {
	m.logger.Warn("Connect called on dummy MIDI client")
	return errUnavailable
}

func (m *DummyMIDIClient) Write(ev contracts.NoteEvent) error {
	return errUnavailable
}

func (m *DummyMIDIClient) Close() error {
	m.logger.Warn("Close called on dummy MIDI client")
	return nil
}
