// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the BeerBattle client runtime and its command
// line.
//
// [App] wires the local SQLite cache, the remote document store, the client
// services and the background job scheduler. The cobra commands built by
// [NewRootCommand] are thin wrappers over the client services: one-shot
// commands write through to the remote store and leave failed writes in the
// outbox, while "run" keeps the sync session of the owner alive.
package client
