// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the notes API.
//
// Msg* constants are written into the "detail" or "message" field of HTTP
// responses. The CLI client compares against the same constants, so the
// wording stays consistent between both ends.
package app

// Messages returned in the "message" field of successful responses.
const (
	MsgUserCreated = "User created successfully"
	MsgNoteDeleted = "Note deleted successfully"
)

// Messages returned in the "detail" field of error responses.
const (
	// MsgUsernameTaken is returned by signup when the username already exists.
	MsgUsernameTaken = "Username already registered"

	// MsgWrongCredentials is returned by login for an unknown user, a wrong
	// password or malformed credentials.
	MsgWrongCredentials = "Incorrect username or password"

	// MsgCouldNotValidateCredentials is returned with 401 when the bearer
	// token is missing, malformed, expired or signed with another key.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgUserNotFound is returned with 401 when a valid token names a user
	// that no longer exists.
	MsgUserNotFound = "User not found"

	MsgNoteNotFound        = "Note not found"
	MsgShareTargetNotFound = "User to share with not found"

	// MsgNoteAlreadySharedWith is a format string taking the target username.
	// MsgNoteAlreadyShared is used when the username is not known.
	MsgNoteAlreadySharedWith = "Note already shared with %s"
	MsgNoteAlreadyShared     = "Note already shared"

	// MsgUnauthorizedTo is a format string taking the denied action
	// ("access", "update", "delete" or "share").
	MsgUnauthorizedTo = "Unauthorized to %s note"

	MsgInvalidRequestBody  = "Invalid request body"
	MsgRequestBodyTooLarge = "Request body too large"
	MsgInvalidNoteID       = "Invalid note id"
	MsgInvalidUsername     = "Username must be 1 to 64 characters without whitespace"
	MsgInvalidPassword     = "Password must be 1 to 72 bytes long"
	MsgShareTargetRequired = "share_with is required"
	MsgSearchQueryRequired = "Search query is required"

	MsgInternalServerError = "Internal Server Error"
)
