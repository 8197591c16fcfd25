package server

import "context"

// Server defines the lifecycle contract of the upload server.
type Server interface {
	// RunServer binds the listener, serves requests and blocks until ctx is
	// done or a stop signal arrives, then shuts down gracefully. A listener
	// that cannot be bound is reported as an error wrapping [ErrListen].
	RunServer(ctx context.Context) error
}
