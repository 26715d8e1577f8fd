package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and the user side of note sharing.
type UserRepository interface {
	// CreateUser stores a new account. Returns [ErrUsernameAlreadyExists]
	// if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername loads an account together with its shared note ids.
	// Returns [ErrNoUserWasFound] if there is no such user.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// AddSharedNote appends noteID to the user's shared notes.
	AddSharedNote(ctx context.Context, username, noteID string) error
}

// NoteRepository persists notes and the note side of sharing.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	// GetNote returns [ErrNoteNotFound] if there is no note with the given id.
	GetNote(ctx context.Context, id string) (models.Note, error)
	// ListNotesByOwner returns the owner's notes in creation order.
	ListNotesByOwner(ctx context.Context, owner string) ([]models.Note, error)
	// UpdateNote applies the fields present in patch and returns the result.
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	// AddSharedWith appends username to the note's shared_with set.
	// Returns [ErrNoteAlreadyShared] if it is already there.
	AddSharedWith(ctx context.Context, id, username string) error
	// SearchNotes returns notes whose content contains any of the lowercase
	// tokens as a case-insensitive substring.
	SearchNotes(ctx context.Context, tokens []string) ([]models.Note, error)
}
