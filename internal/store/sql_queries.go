// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable           = "users"
	notesTable           = "notes"
	noteSharesTable      = "note_shares"
	userSharedNotesTable = "user_shared_notes"
)

var (
	userColumns = []string{"username", "password_hash", "created_at"}
	noteColumns = []string{"id", "title", "content", "owner", "created_at"}
)

// likeEscaper escapes LIKE wildcards so search tokens match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Username, user.PasswordHash, user.CreatedAt.UTC()).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectUserSharedNotesQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("note_id").
		From(userSharedNotesTable).
		Where(sq.Eq{"username": username}).
		OrderBy("shared_at", "note_id").
		ToSql()
}

func buildAddUserSharedNoteQuery(b sq.StatementBuilderType, username, noteID string, sharedAt time.Time) (string, []any, error) {
	return b.Insert(userSharedNotesTable).
		Columns("username", "note_id", "shared_at").
		Values(username, noteID, sharedAt.UTC()).
		ToSql()
}

func buildCreateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Title, note.Content, note.Owner, note.CreatedAt.Time().UTC()).
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListNotesByOwnerQuery(b sq.StatementBuilderType, owner string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("created_at", "id").
		ToSql()
}

// buildUpdateNoteQuery sets only the fields present in patch. An empty patch
// is rejected with [ErrBuildingSQLQuery]; callers short-circuit it.
func buildUpdateNoteQuery(b sq.StatementBuilderType, id string, patch models.NotePatch) (string, []any, error) {
	setMap := make(map[string]any, 2)
	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Content != nil {
		setMap["content"] = *patch.Content
	}
	if len(setMap) == 0 {
		return "", nil, ErrBuildingSQLQuery
	}

	return b.Update(notesTable).
		SetMap(setMap).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildAddSharedWithQuery(b sq.StatementBuilderType, noteID, username string, sharedAt time.Time) (string, []any, error) {
	return b.Insert(noteSharesTable).
		Columns("note_id", "username", "shared_at").
		Values(noteID, username, sharedAt.UTC()).
		ToSql()
}

func buildSelectSharedWithQuery(b sq.StatementBuilderType, noteIDs []string) (string, []any, error) {
	return b.Select("note_id", "username").
		From(noteSharesTable).
		Where(sq.Eq{"note_id": noteIDs}).
		OrderBy("shared_at", "username").
		ToSql()
}

// buildSearchNotesQuery matches notes whose lowercased content contains any
// token. Tokens must already be lowercase; LIKE wildcards in them are escaped.
func buildSearchNotesQuery(b sq.StatementBuilderType, tokens []string) (string, []any, error) {
	if len(tokens) == 0 {
		return "", nil, ErrBuildingSQLQuery
	}

	or := make(sq.Or, 0, len(tokens))
	for _, token := range tokens {
		or = append(or, sq.Expr(`LOWER(content) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(token)+"%"))
	}

	return b.Select(noteColumns...).
		From(notesTable).
		Where(or).
		OrderBy("created_at", "id").
		ToSql()
}
