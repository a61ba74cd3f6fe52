//go:build linux

package console

import (
	"fmt"
	"os"

	"github.com/leandrodaf/tmk/sdk/contracts"
	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Keyboard ioctls and modes from <linux/kd.h>.
const (
	kdGetKbMode = 0x4B44
	kdSetKbMode = 0x4B45

	kRaw       = 0x00
	kXlate     = 0x01
	kMediumRaw = 0x02
	kUnicode   = 0x03
	kOff       = 0x04
)

var _ contracts.Console = (*Console)(nil)

// Console is a Linux virtual console opened on a tty file.
type Console struct {
	file *os.File
	fd   int

	saved  *term.State
	kbMode int // keyboard mode found by Save, -1 until then
}

// New wraps an already open tty, typically os.Stdin.
func New(f *os.File) (*Console, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	return &Console{file: f, fd: fd, kbMode: -1}, nil
}

// Open opens the tty at path for reading and mode changes.
func Open(path string) (*Console, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open console: %w", err)
	}
	c, err := New(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return c, nil
}

// Read reads from the tty.
func (c *Console) Read(p []byte) (int, error) {
	return c.file.Read(p)
}

// Save records the terminal attributes and the current keyboard mode.
func (c *Console) Save() error {
	state, err := term.GetState(c.fd)
	if err != nil {
		return fmt.Errorf("get terminal state: %w", err)
	}
	mode, err := unix.IoctlGetInt(c.fd, kdGetKbMode)
	if err != nil {
		return fmt.Errorf("get keyboard mode: %w", err)
	}
	c.saved = state
	c.kbMode = mode
	return nil
}

// EnterRaw turns off echo and line buffering, clears input processing and
// discards anything already typed.
func (c *Console) EnterRaw() error {
	t, err := unix.IoctlGetTermios(c.fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.Lflag &^= unix.ECHO | unix.ICANON
	t.Iflag = 0
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(c.fd, unix.TCSETSF, t); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	return nil
}

// SetKeymapMode switches the keyboard between scancodes and characters.
func (c *Console) SetKeymapMode(mode contracts.KeymapMode) error {
	kb := kRaw
	if mode == contracts.KeymapTranslated {
		kb = c.translatedMode()
	}
	if err := unix.IoctlSetInt(c.fd, kdSetKbMode, kb); err != nil {
		return fmt.Errorf("set keyboard mode %s: %w", mode, err)
	}
	return nil
}

// translatedMode is the character mode to use while paused: the one the
// console had before, if that was a character mode.
func (c *Console) translatedMode() int {
	if c.kbMode == kUnicode || c.kbMode == kXlate {
		return c.kbMode
	}
	return kXlate
}

// Restore puts back the terminal attributes and keyboard mode found by Save.
// Both are attempted even if one fails.
func (c *Console) Restore() error {
	if c.saved == nil {
		return ErrNotSaved
	}

	var err error
	if rerr := term.Restore(c.fd, c.saved); rerr != nil {
		err = multierr.Append(err, fmt.Errorf("restore terminal: %w", rerr))
	}

	kb := c.kbMode
	if kb == kRaw || kb == kMediumRaw || kb == kOff {
		// Never hand a scancode keyboard back to the shell.
		kb = kXlate
	}
	if kerr := unix.IoctlSetInt(c.fd, kdSetKbMode, kb); kerr != nil {
		err = multierr.Append(err, fmt.Errorf("restore keyboard mode: %w", kerr))
	}
	return err
}

// Close closes the tty file.
func (c *Console) Close() error {
	return c.file.Close()
}
