//go:build !linux

package console

import (
	"os"

	"github.com/leandrodaf/tmk/sdk/contracts"
)

// Console is unavailable outside Linux.
type Console struct{}

// New always fails outside Linux.
func New(f *os.File) (*Console, error) {
	return nil, ErrUnsupported
}

// Open always fails outside Linux.
func Open(path string) (*Console, error) {
	return nil, ErrUnsupported
}

func (c *Console) Read(p []byte) (int, error) { return 0, ErrUnsupported }
func (c *Console) Save() error { return ErrUnsupported }
func (c *Console) EnterRaw() error { return ErrUnsupported }
func (c *Console) Restore() error { return ErrUnsupported }
func (c *Console) SetKeymapMode(mode contracts.KeymapMode) error { return ErrUnsupported }
func (c *Console) Close() error { return nil }
