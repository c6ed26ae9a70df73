package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beer-battle/models"
)

// memoryStore is an in-process DocumentStore keyed by collection and id.
type memoryStore struct {
	docs map[string]map[string]models.Document
	err  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string]map[string]models.Document{}}
}

func (m *memoryStore) Ping(context.Context) error { return m.err }

func (m *memoryStore) Online(context.Context) bool { return m.err == nil }

func (m *memoryStore) Put(_ context.Context, collection string, doc models.Document) error {
	if m.err != nil {
		return m.err
	}
	if m.docs[collection] == nil {
		m.docs[collection] = map[string]models.Document{}
	}
	m.docs[collection][doc.ID] = doc
	return nil
}

func (m *memoryStore) Get(_ context.Context, collection, id, ownerID string) (models.Document, error) {
	doc, ok := m.docs[collection][id]
	if !ok || doc.OwnerID != ownerID {
		return models.Document{}, ErrNotFound
	}
	return doc, nil
}

func (m *memoryStore) ListByOwner(_ context.Context, collection, ownerID string) ([]models.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Document
	for _, doc := range m.docs[collection] {
		if doc.OwnerID == ownerID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, collection, id, _ string) error {
	delete(m.docs[collection], id)
	return m.err
}

func (m *memoryStore) DeleteByOwner(_ context.Context, collection, ownerID string) error {
	for id, doc := range m.docs[collection] {
		if doc.OwnerID == ownerID {
			delete(m.docs[collection], id)
		}
	}
	return m.err
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	records := NewAlcoholRecords(store)
	assert.Equal(t, models.CollectionAlcoholRecords, records.Name())

	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	rec := models.NewAlcoholRecord("r1", "alice", now, "Lager", 500, 5, now)
	require.NoError(t, records.Put(ctx, rec))

	got, err := records.Get(ctx, "r1", "alice")
	require.NoError(t, err)
	assert.True(t, rec.Equal(got))

	list, err := records.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, records.Delete(ctx, "r1", "alice"))
	_, err = records.Get(ctx, "r1", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_MalformedDocumentFailsListing(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	events := NewEvents(store)

	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	require.NoError(t, events.Put(ctx, models.NewEvento("e1", "alice", "Party", "", "", now)))
	require.NoError(t, store.Put(ctx, models.CollectionEvents, models.Document{
		ID: "e2", OwnerID: "alice", Fields: map[string]any{"title": 42},
	}))

	_, err := events.ListByOwner(ctx, "alice")
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.False(t, IsRetryable(err))
}

func TestCollection_PropagatesStoreError(t *testing.T) {
	store := newMemoryStore()
	store.err = ErrServerUnavailable

	_, err := NewEvents(store).ListByOwner(context.Background(), "alice")
	assert.True(t, errors.Is(err, ErrServerUnavailable))
	assert.False(t, IsRetryable(context.Canceled))
}
