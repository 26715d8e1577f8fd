// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress (a missing scheme defaults to
// http) and cfg.Token, when set, is used as the initial bearer token.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{logger: logger}

	a.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetLogger(&restyLogger{logger: logger}).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(traceIDHeader, uuid.NewString())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("server responded")
			return nil
		})

	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup POSTs JSON credentials to /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login POSTs a form body to /api/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AccessTokenResponse, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		SetResult(&token).
		Post("/api/auth/login")
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessTokenResponse{}, err
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&notes).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&note).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&note).
		Put("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ShareNote(ctx context.Context, id, username string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{ShareWith: username}).
		SetResult(&note).
		Post("/api/notes/{id}/share")
	if err != nil {
		return models.Note{}, fmt.Errorf("share note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&notes).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// restyLogger routes resty's internal warnings into the client logger.
type restyLogger struct {
	logger *logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(strings.TrimSpace(format), v...)
}
