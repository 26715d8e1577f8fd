package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		resolveErr  error
		callResolve bool
		wantStatus  int
		wantDetail  string
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Could not validate credentials",
		},
		{
			name:       "wrong scheme",
			header:     "Basic YWxpY2U6c2VjcmV0",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Could not validate credentials",
		},
		{
			name:       "scheme without token",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Could not validate credentials",
		},
		{
			name:        "expired token",
			header:      "Bearer " + testToken,
			callResolve: true,
			resolveErr:  fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrExpiredToken),
			wantStatus:  http.StatusUnauthorized,
			wantDetail:  "Could not validate credentials",
		},
		{
			name:        "user deleted after token was issued",
			header:      "Bearer " + testToken,
			callResolve: true,
			resolveErr:  service.ErrUserNotFound,
			wantStatus:  http.StatusUnauthorized,
			wantDetail:  "User not found",
		},
		{
			name:        "storage down",
			header:      "Bearer " + testToken,
			callResolve: true,
			resolveErr:  errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantDetail:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.callResolve {
				th.auth.EXPECT().ResolveCurrentUser(gomock.Any(), testToken).Return(models.User{}, tt.resolveErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			th.Handler.auth(next).ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuth_StoresUserInContext(t *testing.T) {
	th := newTestHandler(t)
	th.expectAlice()

	var got models.User
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	rec := httptest.NewRecorder()
	th.Handler.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, found)
	assert.Equal(t, "alice", got.Username)

	_, inOriginal := utils.GetUserFromContext(req.Context())
	assert.False(t, inOriginal)
}
