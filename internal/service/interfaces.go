package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue signs a token for subject valid for ttl. A zero ttl means the
	// configured default.
	Issue(ctx context.Context, subject string, ttl time.Duration) (models.Token, error)
	// Verify checks the token and returns its subject. Errors are
	// [ErrInvalidToken] or [ErrExpiredToken].
	Verify(ctx context.Context, tokenString string) (string, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ResolveCurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

// NoteService implements note operations on behalf of an authenticated user.
// Every single-note operation checks that the note exists before checking
// ownership, so a missing note is reported as not found even to non-owners.
type NoteService interface {
	CreateNote(ctx context.Context, owner models.User, input models.NoteInput) (models.Note, error)
	GetNote(ctx context.Context, user models.User, id string) (models.Note, error)
	ListNotes(ctx context.Context, user models.User) ([]models.Note, error)
	UpdateNote(ctx context.Context, user models.User, id string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, user models.User, id string) error
	ShareNote(ctx context.Context, user models.User, id string, request models.ShareRequest) (models.Note, error)
	// SearchNotes matches any whitespace-separated token of query against
	// note content. Ownership is not checked.
	SearchNotes(ctx context.Context, query string) ([]models.Note, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// IDGenerator produces identifiers for new notes.
type IDGenerator interface {
	Generate() string
}
