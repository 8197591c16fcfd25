// Package workers runs background jobs that live alongside the HTTP
// server, such as establishing the backing-store connection after the
// listener is bound.
package workers

import "context"

// Worker is a background job. Run blocks until the job is finished or ctx
// is done; it must return promptly once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
