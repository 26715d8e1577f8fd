// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRequestBody is reported when a JSON or form body cannot be
	// decoded into the expected request model.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// errNoUserInContext means a protected handler was reached without the
	// auth middleware. It is a wiring bug and answers 500.
	errNoUserInContext = errors.New("no authenticated user in request context")
)
