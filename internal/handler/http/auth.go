package http

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const tokenTypeBearer = "bearer"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	utils.WriteMessage(w, app.MsgUserCreated, http.StatusOK)
}

// login accepts an OAuth2 password-style form body or a JSON body with the
// same fields.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := readCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", token.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AccessTokenResponse{
		AccessToken: token.SignedString,
		TokenType:   tokenTypeBearer,
	}, http.StatusOK)
}

func readCredentials(r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := utils.DecodeJSON(r, &credentials); err != nil {
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return credentials, nil
	}

	if err := utils.ParseForm(r); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	credentials.Username = r.PostForm.Get("username")
	credentials.Password = r.PostForm.Get("password")

	return credentials, nil
}
