package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	handler "github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer runs the real router over in-memory storage.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	services, err := service.NewServices(store.NewMemoryStorages(logger.Nop()), config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-secret",
			TokenIssuer:      "go-note-keeper",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: bcrypt.MinCost,
			Version:          "e2e",
		},
	}, logger.Nop())
	require.NoError(t, err)

	h := handler.NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func loggedIn(t *testing.T, serverURL, username string) ServerAdapter {
	t.Helper()
	ctx := context.Background()
	a := newTestAdapter(t, serverURL)
	creds := models.Credentials{Username: username, Password: "pw-" + username}

	require.NoError(t, a.Signup(ctx, creds))
	_, err := a.Login(ctx, creds)
	require.NoError(t, err)
	return a
}

func TestE2E_NoteLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	alice := loggedIn(t, srv.URL, "alice")
	bob := loggedIn(t, srv.URL, "bob")

	note, err := alice.CreateNote(ctx, models.NoteInput{Title: "T", Content: "alpha beta"})
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Owner)
	assert.Empty(t, note.SharedWith)

	got, err := alice.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)

	_, err = bob.GetNote(ctx, note.ID)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "Unauthorized to access note")

	content := ""
	updated, err := alice.UpdateNote(ctx, note.ID, models.NotePatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "T", updated.Title)
	assert.Empty(t, updated.Content)

	_, err = bob.UpdateNote(ctx, note.ID, models.NotePatch{Content: &content})
	require.ErrorIs(t, err, ErrForbidden)

	shared, err := alice.ShareNote(ctx, note.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, shared.SharedWith)

	_, err = alice.ShareNote(ctx, note.ID, "bob")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Note already shared with bob")

	_, err = alice.ShareNote(ctx, note.ID, "carol")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User to share with not found")

	list, err := alice.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	bobList, err := bob.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, bobList)

	require.ErrorIs(t, bob.DeleteNote(ctx, note.ID), ErrForbidden)
	require.NoError(t, alice.DeleteNote(ctx, note.ID))

	_, err = alice.GetNote(ctx, note.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestE2E_Auth(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)
	creds := models.Credentials{Username: "alice", Password: "secret"}

	require.NoError(t, a.Signup(ctx, creds))

	err := a.Signup(ctx, creds)
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Username already registered")

	_, err = a.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Incorrect username or password")

	_, err = a.ListNotes(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken("not-a-jwt")
	_, err = a.ListNotes(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	token, err := a.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	_, err = a.ListNotes(ctx)
	require.NoError(t, err)

	_, err = a.GetNote(ctx, "not-a-uuid")
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestE2E_Search(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	alice := loggedIn(t, srv.URL, "alice")
	_, err := alice.CreateNote(ctx, models.NoteInput{Title: "T", Content: "alpha beta"})
	require.NoError(t, err)

	anonymous := newTestAdapter(t, srv.URL)

	found, err := anonymous.SearchNotes(ctx, "beta")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Owner)

	found, err = anonymous.SearchNotes(ctx, "gamma")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = anonymous.SearchNotes(ctx, "   ")
	require.ErrorIs(t, err, ErrBadRequest)

	version, err := anonymous.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)
}
