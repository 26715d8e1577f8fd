package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the account name of a signup or login request.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password of a signup or login request.
	FieldPassword = "password"

	// FieldShareWith targets the username a note is being shared with.
	FieldShareWith = "share_with"
)

const (
	// MaxUsernameLength is the maximum username length in characters.
	MaxUsernameLength = 64

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// NoteValidator implements [Validator] for the request models of the notes
// API that carry rules: [models.Credentials] and [models.ShareRequest]. Both
// values and pointers are accepted. Note title and content are free text and
// are stored as given, empty strings included.
type NoteValidator struct{}

// NewNoteValidator constructs a [NoteValidator] and returns it as [Validator].
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !isValidUsername(creds.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if creds.Password == "" || len(creds.Password) > MaxPasswordBytes {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateShareRequest(request models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShareWith}
	}

	for _, f := range fields {
		switch f {
		case FieldShareWith:
			if strings.TrimSpace(request.ShareWith) == "" {
				return ErrEmptyShareTarget
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateNoteID reports [ErrInvalidNoteID] unless id is a canonical UUID.
func ValidateNoteID(id string) error {
	if !utils.IsValidUUID(id) {
		return ErrInvalidNoteID
	}
	return nil
}

// SearchTokens splits query on whitespace and lowercases every token.
// A query without tokens is [ErrEmptySearchQuery].
func SearchTokens(query string) ([]string, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil, ErrEmptySearchQuery
	}

	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}
	return tokens, nil
}

func isValidUsername(username string) bool {
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		return false
	}
	return strings.IndexFunc(username, unicode.IsSpace) < 0
}
