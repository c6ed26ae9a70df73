// Package http implements the HTTP API of the remote document store.
//
// Documents live under /api/collections/{collection}/documents. Every
// document request carries an owner JWT; the token subject must be the owner
// the request addresses. Tracing, access logging, request decompression and
// the HashSHA256 body integrity check are handled here before requests reach
// the service layer.
package http
