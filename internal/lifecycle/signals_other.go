//go:build !unix

package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

func stopSelf() {}

// HandleSignal maps one delivered signal onto the controller. Only interrupts
// exist on this platform.
func (c *Controller) HandleSignal(sig os.Signal) {
	if sig == os.Interrupt {
		c.logger.Info("terminating on signal", c.logger.Field().String("signal", sig.String()))
		c.Terminate(130)
	}
}

// Watch handles interrupts until ctx is done or stop is called.
func (c *Controller) Watch(ctx context.Context) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			case sig := <-sigCh:
				c.HandleSignal(sig)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(stopCh)
		})
		<-doneCh
	}
}
