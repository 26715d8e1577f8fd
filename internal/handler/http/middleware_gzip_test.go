// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		writeHeader    bool
		wantGzipped    bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzipped: true},
		{name: "explicit header then body", acceptEncoding: "gzip", writeHeader: true, wantGzipped: true},
		{name: "gzip not accepted", acceptEncoding: "", wantGzipped: false},
		{name: "other encoding only", acceptEncoding: "br", wantGzipped: false},
	}

	const payload = `[{"_id":"1","title":"T","content":"alpha beta"}]`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if tt.writeHeader {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(payload))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, payload, rec.Body.String())
		})
	}
}

func TestGZip_RequestBody(t *testing.T) {
	const body = `{"title":"T","content":"alpha beta"}`

	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		received = string(data)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(gzipBytes(t, body)))
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, body, received)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid request body"}`, rec.Body.String())
}

func TestGZip_NoWriteLeavesResponseEmpty(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_PooledWritersAreReset(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Query().Get("v")))
	})

	for _, v := range []string{"first", "second", "third"} {
		req := httptest.NewRequest(http.MethodGet, "/?v="+v, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rec, req)

		assert.Equal(t, v, gunzip(t, rec.Body.Bytes()))
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}
	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
