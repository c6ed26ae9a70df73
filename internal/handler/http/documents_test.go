// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/beer-battle/internal/app"
	"github.com/MKhiriev/beer-battle/internal/service"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

const eventsPath = "/api/collections/events/documents"

var updatedAt = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

func storedEvent(id, ownerID string) models.StoredDocument {
	return models.StoredDocument{
		Collection: models.CollectionEvents,
		Document: models.Document{
			ID:      id,
			OwnerID: ownerID,
			Fields:  map[string]any{"title": "Party", "date": json.Number("1772582400000")},
		},
		UpdatedAt: updatedAt,
	}
}

func errorBody(t *testing.T, body []byte) string {
	t.Helper()

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// PUT /api/collections/{collection}/documents/{id}
// ─────────────────────────────────────────────

func TestPutDocument(t *testing.T) {
	h, m := newTestHandler(t, "")
	router := h.Init()

	body := []byte(`{"id":"e1","owner_id":"alice","fields":{"title":"Party","date":1772582400000}}`)

	m.documents.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.StoredDocument) (models.StoredDocument, error) {
			assert.Equal(t, models.CollectionEvents, doc.Collection)
			assert.Equal(t, "e1", doc.ID)
			assert.Equal(t, "alice", doc.OwnerID)
			assert.Equal(t, json.Number("1772582400000"), doc.Fields["date"], "numbers are decoded exactly")
			doc.UpdatedAt = updatedAt
			return doc, nil
		})

	rr := serve(router, http.MethodPut, eventsPath+"/e1", body, map[string]string{"Authorization": bearer(t, "alice")})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.StoredDocument
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "e1", got.ID)
	assert.True(t, updatedAt.Equal(got.UpdatedAt))
}

func TestPutDocument_BlankBodyIDTakesPathID(t *testing.T) {
	h, m := newTestHandler(t, "")

	m.documents.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc models.StoredDocument) (models.StoredDocument, error) {
			assert.Equal(t, "e7", doc.ID)
			return doc, nil
		})

	rr := serve(h.Init(), http.MethodPut, eventsPath+"/e7", []byte(`{"owner_id":"alice","fields":{}}`),
		map[string]string{"Authorization": bearer(t, "alice")})

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPutDocument_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "malformed json", body: `{"id":`, wantMsg: app.MsgInvalidDataProvided},
		{name: "id differs from path", body: `{"id":"other","owner_id":"alice","fields":{}}`, wantMsg: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, "")
			// сервис не вызывается

			rr := serve(h.Init(), http.MethodPut, eventsPath+"/e1", []byte(tt.body), map[string]string{"Authorization": bearer(t, "alice")})

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, rr.Body.Bytes()))
		})
	}
}

func TestPutDocument_HashChecked(t *testing.T) {
	h, m := newTestHandler(t, testHashKey)
	router := h.Init()
	body := []byte(`{"id":"e1","owner_id":"alice","fields":{"title":"Party"}}`)

	rr := serve(router, http.MethodPut, eventsPath+"/e1", body, map[string]string{
		"Authorization":  bearer(t, "alice"),
		utils.HashHeader: "deadbeef",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgIntegrityCheckFailed, errorBody(t, rr.Body.Bytes()))

	m.documents.EXPECT().Put(gomock.Any(), gomock.Any()).Return(storedEvent("e1", "alice"), nil)

	rr = serve(router, http.MethodPut, eventsPath+"/e1", body, map[string]string{
		"Authorization":  bearer(t, "alice"),
		utils.HashHeader: utils.NewHasher(testHashKey).HashString(body),
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPutDocument_GzipBodyWithHash(t *testing.T) {
	h, m := newTestHandler(t, testHashKey)
	body := []byte(`{"id":"e1","owner_id":"alice","fields":{"title":"Party"}}`)

	m.documents.EXPECT().Put(gomock.Any(), gomock.Any()).Return(storedEvent("e1", "alice"), nil)

	// хеш считается от распакованного тела
	rr := serve(h.Init(), http.MethodPut, eventsPath+"/e1", gzipped(t, body), map[string]string{
		"Authorization":    bearer(t, "alice"),
		"Content-Encoding": "gzip",
		utils.HashHeader:   utils.NewHasher(testHashKey).HashString(body),
	})

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ─────────────────────────────────────────────
// GET / DELETE
// ─────────────────────────────────────────────

func TestGetDocument(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().Get(gomock.Any(), models.CollectionEvents, "e1", "alice").Return(storedEvent("e1", "alice"), nil)

	rr := serve(h.Init(), http.MethodGet, eventsPath+"/e1?owner=alice", nil, map[string]string{"Authorization": bearer(t, "alice")})

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, "Party", got.Fields["title"])
}

func TestGetDocument_OwnerFromToken(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().Get(gomock.Any(), models.CollectionEvents, "e1", "alice").Return(storedEvent("e1", "alice"), nil)

	rr := serve(h.Init(), http.MethodGet, eventsPath+"/e1", nil, map[string]string{"Authorization": bearer(t, "alice")})

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListDocuments(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().List(gomock.Any(), models.CollectionEvents, "alice").
		Return([]models.StoredDocument{storedEvent("e1", "alice"), storedEvent("e2", "alice")}, nil)

	rr := serve(h.Init(), http.MethodGet, eventsPath+"?owner=alice", nil, map[string]string{"Authorization": bearer(t, "alice")})

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Document
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[1].ID)
}

func TestListDocuments_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().List(gomock.Any(), models.CollectionEvents, "alice").Return(nil, nil)

	rr := serve(h.Init(), http.MethodGet, eventsPath+"?owner=alice", nil, map[string]string{"Authorization": bearer(t, "alice")})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDeleteDocument(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().Delete(gomock.Any(), models.CollectionEvents, "e1", "alice").Return(nil)

	rr := serve(h.Init(), http.MethodDelete, eventsPath+"/e1?owner=alice", nil, map[string]string{"Authorization": bearer(t, "alice")})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteOwnerDocuments(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.documents.EXPECT().DeleteByOwner(gomock.Any(), models.CollectionEvents, "alice").Return(int64(4), nil)

	rr := serve(h.Init(), http.MethodDelete, eventsPath+"?owner=alice", nil, map[string]string{"Authorization": bearer(t, "alice")})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted":4}`, rr.Body.String())
}

func TestDocuments_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t, "")
	router := h.Init()

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, eventsPath},
		{http.MethodGet, eventsPath + "/e1"},
		{http.MethodPut, eventsPath + "/e1"},
		{http.MethodDelete, eventsPath + "/e1"},
		{http.MethodDelete, eventsPath},
	} {
		rr := serve(router, tc.method, tc.target, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.target)
	}
}

func TestDocuments_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &validators.ValidationError{Field: "collection", Message: app.MsgUnknownCollection},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgUnknownCollection,
		},
		{name: "not found", err: service.ErrDocumentNotFound, wantStatus: http.StatusNotFound, wantMsg: app.MsgDocumentNotFound},
		{name: "owner mismatch", err: fmt.Errorf("%w: %w", service.ErrOwnerMismatch, store.ErrDocumentOwnerMismatch), wantStatus: http.StatusForbidden, wantMsg: app.MsgForbidden},
		{name: "storage down", err: service.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable, wantMsg: http.StatusText(http.StatusServiceUnavailable)},
		{name: "query failed", err: fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, "")
			m.documents.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.StoredDocument{}, tt.err)

			rr := serve(h.Init(), http.MethodGet, eventsPath+"/e1", nil, map[string]string{"Authorization": bearer(t, "alice")})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, rr.Body.Bytes()))
		})
	}
}
