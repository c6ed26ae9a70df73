// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beer-battle/internal/app"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestWithGZipRequest_TableTest(t *testing.T) {
	plain := []byte(`{"id":"e1"}`)

	tests := []struct {
		name            string
		contentEncoding string
		body            []byte
		wantStatus      int
		wantBody        string
	}{
		{name: "plain body passes through", body: plain, wantStatus: http.StatusOK, wantBody: string(plain)},
		{name: "gzipped body is decompressed", contentEncoding: "gzip", body: gzipped(t, plain), wantStatus: http.StatusOK, wantBody: string(plain)},
		{name: "multiple encodings", contentEncoding: "gzip, deflate", body: gzipped(t, plain), wantStatus: http.StatusOK, wantBody: string(plain)},
		{name: "invalid gzip", contentEncoding: "gzip", body: []byte("not gzipped data"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.contentEncoding != "" {
				headers["Content-Encoding"] = tt.contentEncoding
			}

			rr := serve(withGZipRequest(echoBody(t)), http.MethodPut, "/docs/e1", tt.body, headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestWithGZipRequest_RemovesContentEncoding(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Content-Encoding")
	})

	serve(withGZipRequest(next), http.MethodPut, "/docs/e1", gzipped(t, []byte("x")), map[string]string{"Content-Encoding": "gzip"})

	assert.Empty(t, seen)
}

func TestWithGZipRequest_PoolReuse(t *testing.T) {
	handler := withGZipRequest(echoBody(t))

	// читатели из пула переиспользуются между запросами
	for i := range 10 {
		body := bytes.Repeat([]byte{byte('a' + i)}, 100)
		rr := serve(handler, http.MethodPut, "/docs/e1", gzipped(t, body), map[string]string{"Content-Encoding": "gzip"})

		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		assert.Equal(t, string(body), rr.Body.String(), "request %d", i)
	}
}

func TestWithGZipRequest_InvalidGzipBody(t *testing.T) {
	rr := serve(withGZipRequest(echoBody(t)), http.MethodPut, "/docs/e1", []byte("not gzipped data"), map[string]string{"Content-Encoding": "gzip"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidGzip, errorBody(t, rr.Body.Bytes()))
}

func TestWithGZipRequest_BodyLimit(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	// сжатое тело маленькое, распакованное больше лимита
	huge := bytes.Repeat([]byte("a"), maxDocumentBodySize+1)
	serve(withGZipRequest(next), http.MethodPut, "/docs/e1", gzipped(t, huge), map[string]string{"Content-Encoding": "gzip"})

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestGzipBody_CloseOnce(t *testing.T) {
	body, err := newGzipBody(bytes.NewReader(gzipped(t, []byte("x"))))
	require.NoError(t, err)

	require.NoError(t, body.Close())
	require.NoError(t, body.Close())
}
