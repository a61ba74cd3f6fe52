//go:build unix

package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// watched are the signals Watch subscribes to.
var watched = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGHUP,
	syscall.SIGQUIT,
	syscall.SIGTSTP,
	syscall.SIGCONT,
}

// stopSelf stops the whole process the way the default SIGTSTP action would.
// A notified SIGTSTP no longer stops anything on its own.
func stopSelf() {
	_ = unix.Kill(os.Getpid(), unix.SIGSTOP)
}

// HandleSignal maps one delivered signal onto the controller.
func (c *Controller) HandleSignal(sig os.Signal) {
	switch sig {
	case syscall.SIGTSTP:
		c.Suspend()
	case syscall.SIGCONT:
		c.Resume()
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT:
		c.logger.Info("terminating on signal", c.logger.Field().String("signal", sig.String()))
		code := 1
		if s, ok := sig.(syscall.Signal); ok {
			code = 128 + int(s)
		}
		c.Terminate(code)
	}
}

// Watch subscribes to termination and job-control signals and handles them
// one at a time on a separate goroutine until ctx is done or the returned
// stop function is called.
func (c *Controller) Watch(ctx context.Context) (stop func()) {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, watched...)

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
