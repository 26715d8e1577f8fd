package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 1 to 64 characters without whitespace")
	ErrInvalidPassword  = errors.New("password must be 1 to 72 bytes long")
	ErrEmptyShareTarget = errors.New("share_with is required")
	ErrInvalidNoteID    = errors.New("invalid note id")
	ErrEmptySearchQuery = errors.New("search query is required")
)
