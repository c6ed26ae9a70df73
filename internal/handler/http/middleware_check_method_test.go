// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/only-get", ok)
	router.Get("/multi", ok)
	router.Put("/multi", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "allowed GET", method: http.MethodGet, path: "/only-get", wantStatus: http.StatusOK},
		{name: "POST on GET route", method: http.MethodPost, path: "/only-get", wantStatus: http.StatusNotFound},
		{name: "DELETE on GET route", method: http.MethodDelete, path: "/only-get", wantStatus: http.StatusNotFound},
		{name: "allowed PUT on multi", method: http.MethodPut, path: "/multi", wantStatus: http.StatusOK},
		{name: "PATCH on multi", method: http.MethodPatch, path: "/multi", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, nil, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodPost, http.StatusNotFound
			}
			rr := serve(router, method, "/only-get", nil, nil)
			assert.Equal(t, want, rr.Code)
		}()
	}
	wg.Wait()
}
