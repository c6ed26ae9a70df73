// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the owner authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is a request without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrOwnerMismatch is a request whose owner query parameter differs from
	// the token subject.
	ErrOwnerMismatch = errors.New("requested owner differs from token subject")

	ErrIDMismatch = errors.New("document id differs from path id")
)
