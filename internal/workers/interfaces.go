// Package workers runs the background machinery of the client: the job
// [Scheduler] and any other long-lived [Worker], side by side under
// [Workers].
package workers

import "context"

// Worker is a long-lived background loop. Run blocks until ctx is cancelled
// or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// Connectivity reports whether the network precondition of a job holds.
type Connectivity interface {
	Online(ctx context.Context) bool
}
