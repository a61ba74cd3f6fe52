// Package lifecycle owns the console for the duration of a session: it puts
// the terminal into raw mode, switches keyboard delivery, and makes sure both
// are put back on every way out of the process.
package lifecycle

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/sdk/contracts"
	"go.uber.org/multierr"
)

// ErrAlreadyAcquired is returned by a second call to Acquire.
var ErrAlreadyAcquired = errors.New("console already acquired")

// Controller is the only component that touches the console's terminal and
// keyboard settings.
type Controller struct {
	console contracts.Console
	logger  contracts.Logger
	exit    func(code int)
	stop    func()

	// keymap is the last mode requested through RequestKeymap.
	keymap atomic.Int32

	mu          sync.Mutex
	acquired    bool // Acquire has succeeded once
	applied     bool // raw settings are currently on the console
	terminating bool
	hooks       []func()

	termOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l contracts.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithExit replaces os.Exit as the final step of Terminate.
func WithExit(exit func(code int)) Option {
	return func(c *Controller) {
		c.exit = exit
	}
}

// WithStop replaces the default way Suspend stops the process.
func WithStop(stop func()) Option {
	return func(c *Controller) {
		c.stop = stop
	}
}

// New returns a controller for console. Nothing is changed until Acquire.
func New(console contracts.Console, opts ...Option) *Controller {
	c := &Controller{
		console: console,
		exit:    os.Exit,
		stop:    stopSelf,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.NewNopLogger()
	}
	c.keymap.Store(int32(contracts.KeymapRaw))
	return c
}

// OnExit registers f to run during Terminate, after the console is restored.
func (c *Controller) OnExit(f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, f)
}

// Keymap returns the last keyboard mode that was requested.
func (c *Controller) Keymap() contracts.KeymapMode {
	return contracts.KeymapMode(c.keymap.Load())
}

// Acquire saves the console settings, enters raw terminal mode and switches
// the keyboard to raw scancodes. If a later step fails, earlier ones are
// undone before the error is returned.
func (c *Controller) Acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.acquired {
		return ErrAlreadyAcquired
	}
	if err := c.console.Save(); err != nil {
		return fmt.Errorf("save console settings: %w", err)
	}
	if err := c.console.EnterRaw(); err != nil {
		return multierr.Append(fmt.Errorf("enter raw mode: %w", err), c.console.Restore())
	}
	if err := c.console.SetKeymapMode(contracts.KeymapRaw); err != nil {
		return multierr.Append(fmt.Errorf("switch keyboard to raw: %w", err), c.console.Restore())
	}

	c.keymap.Store(int32(contracts.KeymapRaw))
	c.acquired = true
	c.applied = true
	c.logger.Debug("console acquired")
	return nil
}

// RequestKeymap records mode as the wanted keyboard mode and applies it.
// Failures are logged; the session carries on.
func (c *Controller) RequestKeymap(mode contracts.KeymapMode) {
	c.keymap.Store(int32(mode))

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.applied {
		return
	}
	if err := c.console.SetKeymapMode(mode); err != nil {
		c.logger.Warn("failed to switch keyboard mode",
			c.logger.Field().String("mode", mode.String()),
			c.logger.Field().Error("error", err))
	}
}

// Release restores the saved console settings if they are not already in
// place. Calling it again is a no-op.
func (c *Controller) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.release()
}

func (c *Controller) release() error {
	if !c.applied {
		return nil
	}
	c.applied = false
	return c.console.Restore()
}

// Terminate restores the console, runs the exit hooks and ends the process
// with code. Only the first call does anything; later or concurrent calls
// wait for it, and since the default exit never returns neither do they.
func (c *Controller) Terminate(code int) {
	c.termOnce.Do(func() {
		c.mu.Lock()
		c.terminating = true
		err := c.release()
		hooks := c.hooks
		c.mu.Unlock()

		if err != nil {
			c.logger.Error("failed to restore console", c.logger.Field().Error("error", err))
		}
		for _, h := range hooks {
			h()
		}
		c.exit(code)
	})
}

// Suspend hands the console back before the process is stopped by job
// control, then stops it.
func (c *Controller) Suspend() {
	c.mu.Lock()
	if c.terminating {
		c.mu.Unlock()
		return
	}
	if err := c.release(); err != nil {
		c.logger.Warn("failed to restore console before suspend", c.logger.Field().Error("error", err))
	}
	c.mu.Unlock()

	c.logger.Debug("suspending")
	c.stop()
}

// Resume puts the console back into raw mode after a job-control continue,
// with whichever keyboard mode was last requested. Settings are applied even
// if they were never released: the shell may have reset the terminal while the
// process was stopped.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.terminating || !c.acquired {
		return
	}

	mode := c.Keymap()

	err := c.console.EnterRaw()
	if err == nil {
		err = c.console.SetKeymapMode(mode)
	}
	if err != nil {
		c.logger.Warn("failed to re-enter raw mode after resume", c.logger.Field().Error("error", err))
	}
	// Partially applied settings still need restoring on the way out.
	c.applied = true
	c.logger.Debug("resumed", c.logger.Field().String("keymap", mode.String()))
}
