// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-visible message strings shared by validation,
// the client CLI and the document store HTTP handlers.
package app

// Validation messages shown to the owner.
const (
	MsgNameEmpty = "name empty"

	MsgTitleEmpty = "title empty"

	MsgMillilitersNotNumber = "milliliters must be a number"

	MsgMillilitersNegative = "milliliters must not be negative"

	// MsgMillilitersTooLarge is returned above the 5000 ml cap.
	MsgMillilitersTooLarge = "milliliters exceeds 5000"

	MsgPercentageNotNumber = "percentage must be a number"

	MsgPercentageNegative = "percentage must not be negative"

	MsgPercentageTooLarge = "percentage exceeds 100"

	MsgDateInvalid = "date must be YYYY-MM-DD"

	MsgAgeNotNumber = "age must be a number"

	MsgAgeOutOfRange = "age out of range"

	MsgOwnerEmpty = "owner empty"

	MsgIDEmpty = "id empty"
)

// Document store responses.
const (
	MsgInvalidDataProvided = "invalid data provided"

	MsgUnknownCollection = "unknown collection"

	MsgNestedField = "nested fields are not supported"

	MsgDocumentNotFound = "document not found"

	MsgForbidden = "owner mismatch"

	MsgUnauthorized = "unauthorized"

	MsgIntegrityCheckFailed = "integrity check failed"

	MsgInternalServerError = "internal server error"

	MsgRequestTimeout = "request timeout"

	MsgInvalidGzip = "invalid gzip data"
)
