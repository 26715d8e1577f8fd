package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	ErrUsernameTaken    = errors.New("username already registered")
	ErrWrongCredentials = errors.New("incorrect username or password")

	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrUnauthenticated     = errors.New("could not validate credentials")
	ErrUserNotFound        = errors.New("user not found")

	ErrForbidden          = errors.New("not enough permissions")
	ErrNoteNotFound       = errors.New("note not found")
	ErrTargetUserNotFound = errors.New("user to share with not found")
	ErrAlreadyShared      = errors.New("note already shared")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// AccessError reports a denied operation on a note. It matches [ErrForbidden].
type AccessError struct {
	Mode     models.AccessMode
	Username string
	NoteID   string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("user %q is not allowed to %s note %s", e.Username, e.Mode, e.NoteID)
}

func (e *AccessError) Unwrap() error {
	return ErrForbidden
}

// AlreadySharedError reports a repeated share. It matches [ErrAlreadyShared].
type AlreadySharedError struct {
	Username string
}

func (e *AlreadySharedError) Error() string {
	return "note already shared with " + e.Username
}

func (e *AlreadySharedError) Unwrap() error {
	return ErrAlreadyShared
}
