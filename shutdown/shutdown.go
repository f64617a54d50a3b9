// Package shutdown ties a context to the process termination signals so a
// long-running command can stop cleanly on Ctrl-C.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mossy2100/galaxon-core/logger"
)

// ErrInterrupted is the cancellation cause of a context stopped by a signal.
var ErrInterrupted = errors.New("interrupted")

// SetupHandler returns a context that is canceled, with a cause wrapping
// ErrInterrupted, on the first SIGINT or SIGTERM. Call stop once the context
// is no longer needed to restore default signal handling.
func SetupHandler(parent context.Context) (context.Context, func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := watch(parent, signals)

	return ctx, func() {
		signal.Stop(signals)
		cancel()
	}
}

func watch(parent context.Context, signals <-chan os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			logger.Get(parent).Warn("received " + sig.String() + ", shutting down")
			cancel(fmt.Errorf("%w: %s", ErrInterrupted, sig))
		case <-done:
		case <-ctx.Done():
		}
	}()

	var once sync.Once

	return ctx, func() {
		once.Do(func() {
			close(done)
			cancel(context.Canceled)
		})
	}
}
