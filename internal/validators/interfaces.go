// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models of the notes API before they
// reach the service layer.
//
// [NoteValidator] covers credentials, note input, note patches and share
// requests. Callers may pass field names to check only part of a model,
// e.g. login validates just the username and password fields it needs.
// [ValidateNoteID] and [SearchTokens] handle the path parameter and the
// search query, which are plain strings rather than models.
//
// Every failure is one of the sentinel errors in errors.go so the HTTP layer
// can map it to 400 with a stable detail message.
package validators

import "context"

// Validator validates a request model, optionally restricted to the named
// fields. Unknown model types are rejected.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
