// Package dispatch delivers note events to a MIDI port without making the
// keyboard wait for the driver.
package dispatch

import (
	"sync"

	"github.com/leandrodaf/tmk/internal/logger"
	"github.com/leandrodaf/tmk/sdk/contracts"
)

// DefaultQueueSize is used when a non-positive size is given.
const DefaultQueueSize = 64

// Dispatcher queues events for a single worker goroutine that writes them to
// a Port. A full queue drops new events instead of blocking the sender.
type Dispatcher struct {
	port   contracts.Port
	logger contracts.Logger

	mu     sync.RWMutex
	events chan contracts.NoteEvent
	closed bool

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// New starts a dispatcher in front of port.
func New(port contracts.Port, log contracts.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	d := &Dispatcher{
		port:   port,
		logger: log,
		events: make(chan contracts.NoteEvent, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Send queues ev for delivery and returns immediately.
func (d *Dispatcher) Send(ev contracts.NoteEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Debug("event sent after close; dropping", d.logger.Field().Int("pitch", ev.Pitch))
		return
	}
	select {
	case d.events <- ev:
	default:
		d.logger.Warn("Event buffer full; dropping MIDI event",
			d.logger.Field().Int("pitch", ev.Pitch),
			d.logger.Field().Bool("on", ev.On))
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for ev := range d.events {
		if err := d.port.Write(ev); err != nil {
			d.logger.Warn("failed to deliver MIDI event",
				d.logger.Field().Int("pitch", ev.Pitch),
				d.logger.Field().Bool("on", ev.On),
				d.logger.Field().Error("error", err))
		}
	}
}

// Close stops accepting events, delivers what is already queued and closes
// the port. Only the first call has any effect.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.events)
		d.mu.Unlock()

		d.wg.Wait()
		d.closeErr = d.port.Close()
	})
	return d.closeErr
}
