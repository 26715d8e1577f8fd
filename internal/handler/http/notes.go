// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

const noteIDParam = "id"

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeNotes(w, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input models.NoteInput
	if err := utils.DecodeJSON(r, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), user, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("note_id", note.ID).Str("owner", note.Owner).Msg("note created")
	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), user, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var patch models.NotePatch
	if err := utils.DecodeJSON(r, &patch); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), user, chi.URLParam(r, noteIDParam), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, noteIDParam)
	if err := h.services.NoteService.DeleteNote(r.Context(), user, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("note_id", noteID).Msg("note deleted")
	utils.WriteMessage(w, app.MsgNoteDeleted, http.StatusOK)
}

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var request models.ShareRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	note, err := h.services.NoteService.ShareNote(r.Context(), user, chi.URLParam(r, noteIDParam), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// searchNotes matches every stored note regardless of owner.
func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.SearchNotes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeNotes(w, notes)
}

func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return models.User{}, false
	}
	return user, true
}

// writeNotes always encodes a JSON array, never null.
func writeNotes(w http.ResponseWriter, notes []models.Note) {
	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}
