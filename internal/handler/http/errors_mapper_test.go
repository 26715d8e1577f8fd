package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "Could not validate credentials"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "Could not validate credentials"},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Could not validate credentials"},
		{"user not found", service.ErrUserNotFound, http.StatusUnauthorized, "User not found"},
		{"wrong credentials", service.ErrWrongCredentials, http.StatusBadRequest, "Incorrect username or password"},
		{
			"wrong credentials wins over validation",
			fmt.Errorf("%w: %w", service.ErrWrongCredentials, validators.ErrInvalidUsername),
			http.StatusBadRequest,
			"Incorrect username or password",
		},
		{"username taken", fmt.Errorf("x: %w", service.ErrUsernameTaken), http.StatusBadRequest, "Username already registered"},
		{"forbidden without mode", service.ErrForbidden, http.StatusForbidden, "Unauthorized to access note"},
		{"forbidden read", &service.AccessError{Mode: models.AccessRead}, http.StatusForbidden, "Unauthorized to access note"},
		{"forbidden write", &service.AccessError{Mode: models.AccessWrite}, http.StatusForbidden, "Unauthorized to update note"},
		{"forbidden share", &service.AccessError{Mode: models.AccessShare}, http.StatusForbidden, "Unauthorized to share note"},
		{"forbidden delete", &service.AccessError{Mode: models.AccessDelete}, http.StatusForbidden, "Unauthorized to delete note"},
		{"note not found", service.ErrNoteNotFound, http.StatusNotFound, "Note not found"},
		{"target not found", service.ErrTargetUserNotFound, http.StatusNotFound, "User to share with not found"},
		{"already shared", &service.AlreadySharedError{Username: "bob"}, http.StatusBadRequest, "Note already shared with bob"},
		{"already shared bare", service.ErrAlreadyShared, http.StatusBadRequest, "Note already shared"},
		{
			"body too large",
			fmt.Errorf("%w: %w", ErrInvalidRequestBody, utils.ErrBodyTooLarge),
			http.StatusRequestEntityTooLarge,
			"Request body too large",
		},
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest, "Invalid request body"},
		{"invalid id", validators.ErrInvalidNoteID, http.StatusBadRequest, "Invalid note id"},
		{"empty query", validators.ErrEmptySearchQuery, http.StatusBadRequest, "Search query is required"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}
