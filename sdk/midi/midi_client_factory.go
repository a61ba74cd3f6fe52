package midi

import (
	"fmt"

	"github.com/leandrodaf/tmk/internal/midi/dispatch"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

// NewMIDISink opens the output port, connects the configured destination if
// there is one, and returns a sink that delivers note events in the
// background. Closing the sink closes the port.
func NewMIDISink(opts ...contracts.Option) (contracts.Sink, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return newSink(&options, NewPort)
}

func newSink(options *contracts.ClientOptions, open func(*contracts.ClientOptions) (contracts.Port, error)) (contracts.Sink, error) {
	port, err := open(options)
	if err != nil {
		return nil, fmt.Errorf("open MIDI output: %w", err)
	}

	if options.Destination != nil {
		if err := port.Connect(*options.Destination); err != nil {
			_ = port.Close()
			return nil, err
		}
	}

	return dispatch.New(port, options.Logger, options.QueueSize), nil
}

// ListDestinations opens the output port just long enough to list the
// destinations it can be connected to.
func ListDestinations(opts ...contracts.Option) ([]contracts.DeviceInfo, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	port, err := NewPort(&options)
	if err != nil {
		return nil, fmt.Errorf("open MIDI output: %w", err)
	}
	defer port.Close()

	return port.ListDestinations()
}
