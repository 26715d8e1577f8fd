// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// memoryState is the process-local data set shared by the in-memory user and
// note repositories. Values handed out are always copies.
type memoryState struct {
	mu    sync.RWMutex
	users map[string]models.User
	notes map[string]models.Note
}

func newMemoryState() *memoryState {
	return &memoryState{
		users: make(map[string]models.User),
		notes: make(map[string]models.Note),
	}
}

type memoryUserRepository struct {
	state  *memoryState
	logger *logger.Logger
}

type memoryNoteRepository struct {
	state  *memoryState
	logger *logger.Logger
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.users[user.Username]; ok {
		return models.User{}, ErrUsernameAlreadyExists
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.SharedNotes = []string{}
	r.state.users[user.Username] = user

	return cloneUser(user), nil
}

func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	user, ok := r.state.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return cloneUser(user), nil
}

func (r *memoryUserRepository) AddSharedNote(ctx context.Context, username, noteID string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	user, ok := r.state.users[username]
	if !ok {
		return ErrReferenceNotFound
	}
	if _, ok = r.state.notes[noteID]; !ok {
		return ErrReferenceNotFound
	}
	if slices.Contains(user.SharedNotes, noteID) {
		return ErrNoteAlreadyShared
	}

	user.SharedNotes = append(slices.Clone(user.SharedNotes), noteID)
	r.state.users[username] = user

	return nil
}

func (r *memoryNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.users[note.Owner]; !ok {
		return models.Note{}, ErrReferenceNotFound
	}

	note.SharedWith = []string{}
	r.state.notes[note.ID] = note

	return cloneNote(note), nil
}

func (r *memoryNoteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	note, ok := r.state.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	return cloneNote(note), nil
}

func (r *memoryNoteRepository) ListNotesByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	return r.filter(func(note models.Note) bool {
		return note.Owner == owner
	}), nil
}

func (r *memoryNoteRepository) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	note, ok := r.state.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	r.state.notes[id] = note

	return cloneNote(note), nil
}

// DeleteNote removes the note and every user's reference to it.
func (r *memoryNoteRepository) DeleteNote(ctx context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if _, ok := r.state.notes[id]; !ok {
		return ErrNoteNotFound
	}
	delete(r.state.notes, id)

	for username, user := range r.state.users {
		if slices.Contains(user.SharedNotes, id) {
			user.SharedNotes = slices.DeleteFunc(slices.Clone(user.SharedNotes), func(noteID string) bool {
				return noteID == id
			})
			r.state.users[username] = user
		}
	}

	return nil
}

func (r *memoryNoteRepository) AddSharedWith(ctx context.Context, id, username string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	note, ok := r.state.notes[id]
	if !ok {
		return ErrReferenceNotFound
	}
	if _, ok = r.state.users[username]; !ok {
		return ErrReferenceNotFound
	}
	if note.IsSharedWith(username) {
		return ErrNoteAlreadyShared
	}

	note.SharedWith = append(slices.Clone(note.SharedWith), username)
	r.state.notes[id] = note

	return nil
}

func (r *memoryNoteRepository) SearchNotes(ctx context.Context, tokens []string) ([]models.Note, error) {
	if len(tokens) == 0 {
		return []models.Note{}, nil
	}

	return r.filter(func(note models.Note) bool {
		content := strings.ToLower(note.Content)
		for _, token := range tokens {
			if strings.Contains(content, token) {
				return true
			}
		}
		return false
	}), nil
}

// filter returns copies of matching notes ordered by creation time and id,
// the same order the SQL repository uses.
func (r *memoryNoteRepository) filter(match func(models.Note) bool) []models.Note {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	notes := make([]models.Note, 0)
	for _, note := range r.state.notes {
		if match(note) {
			notes = append(notes, cloneNote(note))
		}
	}

	slices.SortFunc(notes, func(a, b models.Note) int {
		if c := a.CreatedAt.Time().Compare(b.CreatedAt.Time()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return notes
}

func cloneUser(user models.User) models.User {
	user.SharedNotes = slices.Clone(user.SharedNotes)
	if user.SharedNotes == nil {
		user.SharedNotes = []string{}
	}
	return user
}

func cloneNote(note models.Note) models.Note {
	note.SharedWith = slices.Clone(note.SharedWith)
	if note.SharedWith == nil {
		note.SharedWith = []string{}
	}
	return note
}
