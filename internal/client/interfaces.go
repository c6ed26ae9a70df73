// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the lifecycle of a runnable client application.
type Client interface {
	// Run starts the sync session of ownerID and blocks until ctx is
	// cancelled.
	Run(ctx context.Context, ownerID string) error

	// Close stops background work and releases the local cache.
	Close() error
}
