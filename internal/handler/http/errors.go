// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// start with the "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoIdentity is returned when a protected handler runs without an
	// identity in its context.
	ErrNoIdentity = errors.New("no identity in request context")

	ErrInvalidJSON   = errors.New("malformed JSON body")
	ErrRouteNotFound = errors.New("route not found")

	// ErrRequestTimeout is reported when a handler outlives the configured
	// request timeout without writing a response.
	ErrRequestTimeout = errors.New("request timed out")
)
