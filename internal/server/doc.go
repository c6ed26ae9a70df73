// Package server runs the transport servers of the document store.
//
// Both listeners are bound before any of them starts serving, so a busy
// port fails startup instead of leaving a half-running server. Run blocks
// until its context is cancelled or a server fails, then shuts every server
// down gracefully.
package server
