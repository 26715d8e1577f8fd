// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire format of note timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is a user-owned text document.
//
// Owner and CreatedAt are fixed at creation. SharedWith is a set of usernames
// the owner granted visibility to; it never contains duplicates.
type Note struct {
	// ID is the system-generated identifier (UUID string).
	ID string `json:"_id"`

	// Title is the short human-readable heading of the note.
	Title string `json:"title"`

	// Content is the note body. Search matches against this field only.
	Content string `json:"content"`

	// Owner is the username of the creator.
	Owner string `json:"owner"`

	// SharedWith lists usernames the note was shared with, in share order.
	SharedWith []string `json:"shared_with"`

	// CreatedAt is the creation time, serialized as [TimestampLayout].
	CreatedAt Timestamp `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// IsSharedWith reports whether username is already in SharedWith.
func (n Note) IsSharedWith(username string) bool {
	for _, u := range n.SharedWith {
		if u == username {
			return true
		}
	}
	return false
}

// NoteInput is the body of a note creation request.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotePatch is a partial note update. Nil fields are left untouched; a
// pointer to an empty string is still an update.
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// ShareRequest is the body of a note share request.
type ShareRequest struct {
	ShareWith string `json:"share_with"`
}

// Timestamp is a time.Time that marshals to JSON using [TimestampLayout].
type Timestamp time.Time

// Time returns the underlying time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	parsed, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	*t = Timestamp(parsed)
	return nil
}
