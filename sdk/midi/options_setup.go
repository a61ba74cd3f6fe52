package midi

import (
	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/internal/midi/dispatch"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

// DefaultPortName names the virtual output port when none is given.
const DefaultPortName = "tmk"

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.PortName == "" {
		options.PortName = DefaultPortName
	}
	if options.QueueSize <= 0 {
		options.QueueSize = dispatch.DefaultQueueSize
	}

	options.Logger.SetLevel(options.LogLevel)
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	return *options, nil
}
