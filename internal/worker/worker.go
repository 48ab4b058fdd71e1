package worker

import (
	"context"
)

// Worker is one long-running background consumer.
type Worker interface {
	// Start runs the worker until ctx is cancelled.
	Start(ctx context.Context) error

	// Stop releases worker resources.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
