// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the go-note-keeper REST API.
//
// [ServerAdapter] hides the HTTP details (paths, form and JSON bodies, the
// bearer header) from callers such as the CLI. Non-2xx responses are mapped
// to the sentinel errors in errors.go, so callers use [errors.Is] instead of
// inspecting status codes; the server's "detail" message is kept in the error
// text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the notes server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, credentials models.Credentials) error

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// ShareNote grants username visibility of the note and returns the
	// updated note.
	ShareNote(ctx context.Context, id, username string) (models.Note, error)

	// SearchNotes runs an unauthenticated substring search.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
