package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

// ── withRequestID ──

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "client id kept", incoming: "req-42", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", 65), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(requestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withRequestID(next).ServeHTTP(rec, req)

			id := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, id)
			if tt.keep {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, id, lines[0]["request_id"])
		})
	}
}

// ── withLogging ──

func TestWithLogging_Levels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, body: "{}", wantLevel: "info"},
		{name: "implicit ok", status: 0, body: "[]", wantLevel: "info"},
		{name: "client error", status: http.StatusForbidden, body: "{}", wantLevel: "warn"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/lists?name=family", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "/api/lists?name=family", lines[0]["uri"])
			assert.EqualValues(t, len(tt.body), lines[0]["size"])
		})
	}
}

func TestWithLogging_RouteFields(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/lists/{listID}/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/lists/l1/items", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "l1", lines[0]["list_id"])
	assert.Equal(t, "/api/lists/{listID}/items", lines[0]["route"])
	assert.EqualValues(t, http.StatusNoContent, lines[0]["status"])
}

// ── statusRecorder ──

func TestStatusRecorder_FirstHeaderWins(t *testing.T) {
	inner := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: inner}

	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusInternalServerError)
	n, err := rec.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, rec.status)
	assert.Equal(t, http.StatusCreated, inner.Code)
	assert.Equal(t, 5, rec.size)
	assert.Equal(t, inner, rec.Unwrap())
}

// ── withGzipBody ──

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestWithGzipBody(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(raw)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, `{"name":"Family"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGzipBody(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"name":"Family"}`, got)
}

func TestWithGzipBody_PlainPassesThrough(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	withGzipBody(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "plain", got)
}

func TestWithGzipBody_Corrupt(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	withGzipBody(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── full router ──

func TestRouter_GzipRoundTrip(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.CreateListRequest{Name: "Family"}
	m.lists.EXPECT().CreateList(gomock.Any(), req).Return(models.List{ID: "l1", Name: "Family"}, nil)

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	rec := serve(t, h, http.MethodPost, "/api/lists", gzipped(t, string(raw)).String(),
		"Content-Encoding", "gzip", "Accept-Encoding", "gzip")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	var got models.List
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, "l1", got.ID)
}
