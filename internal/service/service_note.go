// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	userRepository store.UserRepository
	noteRepository store.NoteRepository
	idGenerator    IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewNoteService(userRepository store.UserRepository, noteRepository store.NoteRepository, idGenerator IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateNote stores a new note owned by owner. created_at has second precision.
func (s *noteService) CreateNote(ctx context.Context, owner models.User, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		ID:         s.idGenerator.Generate(),
		Title:      input.Title,
		Content:    input.Content,
		Owner:      owner.Username,
		SharedWith: []string{},
		CreatedAt:  models.Timestamp(s.now().UTC().Truncate(time.Second)),
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("owner", owner.Username).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

func (s *noteService) GetNote(ctx context.Context, user models.User, id string) (models.Note, error) {
	return s.getAuthorized(ctx, user, id, models.AccessRead)
}

func (s *noteService) ListNotes(ctx context.Context, user models.User) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotesByOwner(ctx, user.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner", user.Username).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	return notes, nil
}

func (s *noteService) UpdateNote(ctx context.Context, user models.User, id string, patch models.NotePatch) (models.Note, error) {
	if _, err := s.getAuthorized(ctx, user, id, models.AccessWrite); err != nil {
		return models.Note{}, err
	}

	updated, err := s.noteRepository.UpdateNote(ctx, id, patch)
	if err != nil {
		return models.Note{}, s.wrapNoteError(ctx, err, id, "note update ended with error")
	}

	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, user models.User, id string) error {
	if _, err := s.getAuthorized(ctx, user, id, models.AccessDelete); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, id); err != nil {
		return s.wrapNoteError(ctx, err, id, "note deletion ended with error")
	}

	return nil
}

// ShareNote grants request.ShareWith visibility of the note.
//
// Checks run in order: note exists, caller owns it, target user exists, note
// is not already shared with the target. The note side is written first and
// the user side second, without a transaction. If the second write fails the
// share is still reported as successful and the failure is logged.
func (s *noteService) ShareNote(ctx context.Context, user models.User, id string, request models.ShareRequest) (models.Note, error) {
	log := logger.FromContext(ctx)
	target := request.ShareWith

	note, err := s.getAuthorized(ctx, user, id, models.AccessShare)
	if err != nil {
		return models.Note{}, err
	}

	if _, err = s.userRepository.FindUserByUsername(ctx, target); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Note{}, ErrTargetUserNotFound
		}
		log.Err(err).Str("target", target).Msg("share target lookup ended with error")
		return models.Note{}, fmt.Errorf("share target lookup ended with error: %w", err)
	}

	if note.IsSharedWith(target) {
		return models.Note{}, &AlreadySharedError{Username: target}
	}

	if err = s.noteRepository.AddSharedWith(ctx, id, target); err != nil {
		switch {
		case errors.Is(err, store.ErrNoteAlreadyShared):
			return models.Note{}, &AlreadySharedError{Username: target}
		case errors.Is(err, store.ErrReferenceNotFound):
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("note_id", id).Str("target", target).Msg("adding share to note ended with error")
		return models.Note{}, fmt.Errorf("adding share to note ended with error: %w", err)
	}

	if err = s.userRepository.AddSharedNote(ctx, target, id); err != nil && !errors.Is(err, store.ErrNoteAlreadyShared) {
		log.Err(err).
			Str("note_id", id).
			Str("target", target).
			Msg("note shared but recording it on the target user failed")
	}

	shared, err := s.noteRepository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, s.wrapNoteError(ctx, err, id, "reading shared note ended with error")
	}

	return shared, nil
}

func (s *noteService) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	tokens, err := validators.SearchTokens(query)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepository.SearchNotes(ctx, tokens)
	if err != nil {
		logger.FromContext(ctx).Err(err).Strs("tokens", tokens).Msg("search ended with error")
		return nil, fmt.Errorf("search ended with error: %w", err)
	}

	return notes, nil
}

// getAuthorized loads the note and checks that user may perform mode on it.
func (s *noteService) getAuthorized(ctx context.Context, user models.User, id string, mode models.AccessMode) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, s.wrapNoteError(ctx, err, id, "note lookup ended with error")
	}

	if err = CheckAccess(user, note, mode); err != nil {
		logger.FromContext(ctx).Debug().
			Str("username", user.Username).
			Str("note_id", id).
			Str("mode", mode.String()).
			Msg("access denied")
		return models.Note{}, err
	}

	return note, nil
}

func (s *noteService) wrapNoteError(ctx context.Context, err error, id, msg string) error {
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}

	logger.FromContext(ctx).Err(err).Str("note_id", id).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
