package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// errorRule maps every error matching target to a status code and a detail
// message. Rules are checked in order and the first match wins, so an error
// wrapping several sentinels is classified by the earliest one.
type errorRule struct {
	target error
	status int
	detail func(err error) string
}

var errorRules = []errorRule{
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized, detail: fixed(app.MsgCouldNotValidateCredentials)},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized, detail: fixed(app.MsgCouldNotValidateCredentials)},
	{target: service.ErrExpiredToken, status: http.StatusUnauthorized, detail: fixed(app.MsgCouldNotValidateCredentials)},
	{target: utils.ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, detail: fixed(app.MsgCouldNotValidateCredentials)},
	{target: service.ErrUserNotFound, status: http.StatusUnauthorized, detail: fixed(app.MsgUserNotFound)},

	// checked before the validation rules: malformed login input is
	// reported as wrong credentials
	{target: service.ErrWrongCredentials, status: http.StatusBadRequest, detail: fixed(app.MsgWrongCredentials)},
	{target: service.ErrUsernameTaken, status: http.StatusBadRequest, detail: fixed(app.MsgUsernameTaken)},

	{target: service.ErrForbidden, status: http.StatusForbidden, detail: forbiddenDetail},
	{target: service.ErrNoteNotFound, status: http.StatusNotFound, detail: fixed(app.MsgNoteNotFound)},
	{target: service.ErrTargetUserNotFound, status: http.StatusNotFound, detail: fixed(app.MsgShareTargetNotFound)},
	{target: service.ErrAlreadyShared, status: http.StatusBadRequest, detail: alreadySharedDetail},

	{target: utils.ErrBodyTooLarge, status: http.StatusRequestEntityTooLarge, detail: fixed(app.MsgRequestBodyTooLarge)},
	{target: ErrInvalidRequestBody, status: http.StatusBadRequest, detail: fixed(app.MsgInvalidRequestBody)},
	{target: utils.ErrEmptyBody, status: http.StatusBadRequest, detail: fixed(app.MsgInvalidRequestBody)},
	{target: validators.ErrInvalidNoteID, status: http.StatusBadRequest, detail: fixed(app.MsgInvalidNoteID)},
	{target: validators.ErrInvalidUsername, status: http.StatusBadRequest, detail: fixed(app.MsgInvalidUsername)},
	{target: validators.ErrInvalidPassword, status: http.StatusBadRequest, detail: fixed(app.MsgInvalidPassword)},
	{target: validators.ErrEmptyShareTarget, status: http.StatusBadRequest, detail: fixed(app.MsgShareTargetRequired)},
	{target: validators.ErrEmptySearchQuery, status: http.StatusBadRequest, detail: fixed(app.MsgSearchQueryRequired)},
}

func fixed(detail string) func(error) string {
	return func(error) string { return detail }
}

func forbiddenDetail(err error) string {
	var accessErr *service.AccessError
	if !errors.As(err, &accessErr) {
		return fmt.Sprintf(app.MsgUnauthorizedTo, "access")
	}
	return fmt.Sprintf(app.MsgUnauthorizedTo, actionVerb(accessErr.Mode))
}

// actionVerb names a denied access mode the way it appears in 403 details.
func actionVerb(mode models.AccessMode) string {
	switch mode {
	case models.AccessWrite:
		return "update"
	case models.AccessShare:
		return "share"
	case models.AccessDelete:
		return "delete"
	default:
		return "access"
	}
}

func alreadySharedDetail(err error) string {
	var sharedErr *service.AlreadySharedError
	if !errors.As(err, &sharedErr) {
		return app.MsgNoteAlreadyShared
	}
	return fmt.Sprintf(app.MsgNoteAlreadySharedWith, sharedErr.Username)
}

// classifyError returns the status code and detail message for err.
// Unknown errors are 500 with a generic detail.
func classifyError(err error) (int, string) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.status, rule.detail(err)
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the classified {"detail": ...} response.
// Every 401 carries a "WWW-Authenticate: Bearer" challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, detail := classifyError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detail, status)
}
