package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		next       http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name:       "explicit status",
			method:     http.MethodPut,
			next:       func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "implicit 200 on write",
			method:     http.MethodGet,
			next:       func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("hello")) },
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name:       "nothing written",
			method:     http.MethodGet,
			next:       func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "error status with body",
			method: http.MethodDelete,
			next: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantSize:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t, "")

			req := httptest.NewRequest(tt.method, "/api/collections/events/documents", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rr := httptest.NewRecorder()

			h.withLogging(tt.next).ServeHTTP(rr, req)

			line := logLine(t, &buf)
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, "/api/collections/events/documents", line["uri"])
			assert.Equal(t, tt.wantStatus, line["status"])
			assert.Equal(t, tt.wantSize, line["size"])
			assert.Contains(t, line, "duration")
		})
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h, _ := newTestHandler(t, "")
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		serve(h.withLogging(next), http.MethodGet, "/", nil, nil)
	})
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Write([]byte("abc"))
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Equal(t, http.ResponseWriter(rr), w.Unwrap())
}
