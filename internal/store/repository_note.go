// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// Notes live in the "notes" table; the usernames a note is shared with live
// in "note_shares" and are loaded with one extra query per call.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts the note as given; the caller assigns ID and CreatedAt.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(n.builder, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("owner", note.Owner).
			Msg("failed to insert note")
		return models.Note{}, n.classify(err, nil, ErrExecutingStatement)
	}

	if note.SharedWith == nil {
		note.SharedWith = []string{}
	}
	return note, nil
}

// GetNote loads a single note with its shared_with set.
func (n *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(n.builder, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	var createdAt time.Time
	row := n.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &createdAt); err != nil {
		if isNoRows(err) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteRepository.GetNote").Str("note_id", id).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	note.CreatedAt = models.Timestamp(createdAt.UTC())

	notes := []models.Note{note}
	if err = n.attachSharedWith(ctx, notes); err != nil {
		return models.Note{}, err
	}

	return notes[0], nil
}

// ListNotesByOwner returns the owner's notes ordered by creation time.
func (n *noteRepository) ListNotesByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	query, args, err := buildListNotesByOwnerQuery(n.builder, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.selectNotes(ctx, "noteRepository.ListNotesByOwner", query, args)
}

// UpdateNote applies the present fields of patch. An empty patch returns the
// stored note unchanged.
func (n *noteRepository) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return n.GetNote(ctx, id)
	}

	query, args, err := buildUpdateNoteQuery(n.builder, id, patch)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Str("note_id", id).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return n.GetNote(ctx, id)
}

// DeleteNote removes the note; share rows go with it via ON DELETE CASCADE.
func (n *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Str("note_id", id).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// AddSharedWith inserts a row into "note_shares".
//
// Error handling:
//   - duplicate (note_id, username) → [ErrNoteAlreadyShared].
//   - unknown note or user → [ErrReferenceNotFound].
func (n *noteRepository) AddSharedWith(ctx context.Context, id, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAddSharedWithQuery(n.builder, id, username, time.Now())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.AddSharedWith").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = n.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.AddSharedWith").
			Str("note_id", id).
			Str("username", username).
			Msg("failed to share note")
		return n.classify(err, ErrNoteAlreadyShared, ErrExecutingStatement)
	}

	return nil
}

// SearchNotes returns every note whose content contains any of the tokens.
func (n *noteRepository) SearchNotes(ctx context.Context, tokens []string) ([]models.Note, error) {
	if len(tokens) == 0 {
		return []models.Note{}, nil
	}

	query, args, err := buildSearchNotesQuery(n.builder, tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.selectNotes(ctx, "noteRepository.SearchNotes", query, args)
}

func (n *noteRepository) selectNotes(ctx context.Context, funcName, query string, args []any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		var createdAt time.Time

		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &createdAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		note.CreatedAt = models.Timestamp(createdAt.UTC())
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = n.attachSharedWith(ctx, notes); err != nil {
		return nil, err
	}

	return notes, nil
}

// attachSharedWith fills SharedWith for every note with one IN query.
func (n *noteRepository) attachSharedWith(ctx context.Context, notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(notes))
	index := make(map[string]int, len(notes))
	for i := range notes {
		notes[i].SharedWith = []string{}
		ids = append(ids, notes[i].ID)
		index[notes[i].ID] = i
	}

	query, args, err := buildSelectSharedWithQuery(n.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.attachSharedWith").Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID, username string
		if err = rows.Scan(&noteID, &username); err != nil {
			log.Err(err).Str("func", "noteRepository.attachSharedWith").Msg("failed to scan share row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[noteID]; ok {
			notes[i].SharedWith = append(notes[i].SharedWith, username)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
