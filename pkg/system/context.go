package system

import (
	"context"
)

// RunWithContext executes a release operation with context awareness. It
// manages the lifecycle of the operation, ensuring proper completion or
// graceful interruption.
//
// The function handles three scenarios:
//   - Normal completion: the operation finishes successfully
//   - Error during the operation: the error is propagated to the caller
//   - Context cancellation: the operation is signaled to stop but allowed
//     to finish gracefully
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets an independent context so interruption never
	// leaves resources in an inconsistent state mid-release.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it so critical
		// release work still finishes.
		cancel()
		return <-done
	}
}
