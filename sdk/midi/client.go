package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/tmk/internal/midi/midilinux"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI output backend.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding MIDI port initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.Port, error){
	"linux": midilinux.NewMIDIClient, // ALSA sequencer through rtmidi.
}

// NewPort opens the MIDI output port for the current operating system.
// It returns ErrUnsupportedOS if there is no backend for it.
func NewPort(opts *contracts.ClientOptions) (contracts.Port, error) {
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
