// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the routes registered by Handler.Init without the
// middleware chain.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/version/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/unpack", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET version passes through", http.MethodGet, "/api/version/", http.StatusOK},
		{"POST unpack passes through", http.MethodPost, "/api/unpack", http.StatusAccepted},
		{"GET unpack hidden", http.MethodGet, "/api/unpack", http.StatusNotFound},
		{"PATCH unpack hidden", http.MethodPatch, "/api/unpack", http.StatusNotFound},
		{"DELETE version hidden", http.MethodDelete, "/api/version/", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}
