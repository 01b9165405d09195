// Package shutdown ties a context to the process receiving SIGINT or SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/amp-sort/logger"
)

// WithSignals returns a copy of parent that is canceled when the process
// receives SIGINT or SIGTERM. Work that has not started yet should check the
// context and give up; work already running is left to finish.
//
// Call stop to release the signal handler once the context is no longer
// needed.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	channel := make(chan os.Signal, 1)
	signal.Notify(channel, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := watch(parent, channel)

	return ctx, func() {
		signal.Stop(channel)
		cancel()
	}
}

func watch(parent context.Context, signals <-chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case sig := <-signals:
			logger.Get(ctx).Warn("Received " + sig.String() + ", shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
