package logger

import (
	"github.com/leandrodaf/tmk/sdk/contracts"
	"go.uber.org/zap"
)

// NewNopLogger returns a logger that discards everything. Components use it
// when no logger is configured.
func NewNopLogger() contracts.Logger {
	return NewZapLoggerFrom(zap.NewNop())
}
