package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, immutable identifier of the account.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// SharedNotes holds identifiers of notes other users have shared with
	// this user. Insertion order is irrelevant.
	SharedNotes []string `json:"shared_notes"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasSharedNote reports whether noteID is present in the user's shared notes.
func (u User) HasSharedNote(noteID string) bool {
	for _, id := range u.SharedNotes {
		if id == noteID {
			return true
		}
	}
	return false
}

// Credentials is the username/password pair submitted at signup and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
