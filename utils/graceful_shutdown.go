package utils

import "context"

// GracefulShutdown blocks until ctx is canceled, runs the cleanup hook,
// then releases the signal registration. Run it in its own goroutine.
func GracefulShutdown(ctx context.Context, stop context.CancelFunc, onShutdown func()) {
	<-ctx.Done()
	onShutdown()
	stop()
}
