package server

import "context"

// Server is the lifecycle of the transport servers managed by this package.
type Server interface {
	// Run serves requests until ctx is cancelled or a server fails. A clean
	// shutdown returns nil.
	Run(ctx context.Context) error
}
