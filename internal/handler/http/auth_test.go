// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	creds := models.Credentials{Username: "alice", Password: "secret"}

	tests := []struct {
		name       string
		body       any
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantDetail string
	}{
		{
			name:       "created",
			body:       creds,
			callsSvc:   true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "username taken",
			body:       creds,
			callsSvc:   true,
			serviceErr: fmt.Errorf("error registering user: %w", service.ErrUsernameTaken),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Username already registered",
		},
		{
			name:       "invalid username",
			body:       creds,
			callsSvc:   true,
			serviceErr: fmt.Errorf("error during credentials validation: %w", validators.ErrInvalidUsername),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Username must be 1 to 64 characters without whitespace",
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid request body",
		},
		{
			name:       "storage failure",
			body:       creds,
			callsSvc:   true,
			serviceErr: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.callsSvc {
				th.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(models.User{Username: "alice"}, tt.serviceErr)
			}

			rec := th.serve(http.MethodPost, "/api/auth/signup", tt.body, false)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, detailOf(t, rec))
				return
			}
			assert.Equal(t, "User created successfully", decodeBody[models.MessageResponse](t, rec).Message)
		})
	}
}

func TestLogin_FormBody(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "alice", Password: "secret"}).
		Return(models.Token{SignedString: testToken, Username: "alice"}, nil)

	form := url.Values{"username": {"alice"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.AccessTokenResponse](t, rec)
	assert.Equal(t, testToken, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_JSONBody(t *testing.T) {
	th := newTestHandler(t)
	creds := models.Credentials{Username: "alice", Password: "secret"}
	th.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Token{SignedString: testToken}, nil)

	rec := th.serve(http.MethodPost, "/api/auth/login", creds, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testToken, decodeBody[models.AccessTokenResponse](t, rec).AccessToken)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "wrong password",
			serviceErr: service.ErrWrongCredentials,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Incorrect username or password",
		},
		{
			name:       "malformed credentials read as wrong credentials",
			serviceErr: fmt.Errorf("%w: %w", service.ErrWrongCredentials, validators.ErrInvalidPassword),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Incorrect username or password",
		},
		{
			name:       "token signing failed",
			serviceErr: fmt.Errorf("%w: boom", service.ErrTokenCreationFailed),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.serviceErr)

			rec := th.serve(http.MethodPost, "/api/auth/login", models.Credentials{Username: "alice", Password: "x"}, false)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
		})
	}
}

func TestLogin_EmptyFormStillReachesService(t *testing.T) {
	th := newTestHandler(t)
	th.auth.EXPECT().Login(gomock.Any(), models.Credentials{}).Return(models.Token{}, service.ErrWrongCredentials)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	th.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
