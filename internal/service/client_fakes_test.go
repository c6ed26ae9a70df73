package service

import (
	"context"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/workers"
	"github.com/MKhiriev/beer-battle/models"
)

// memoryStore — удалённое хранилище документов в памяти.
type memoryStore struct {
	mu   sync.Mutex
	docs map[string]map[string]models.Document
	err  error
	puts int

	// rejected отвечает ошибкой на запись конкретного документа
	rejected map[string]error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string]map[string]models.Document)}
}

func (m *memoryStore) fail(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *memoryStore) reject(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rejected == nil {
		m.rejected = make(map[string]error)
	}
	m.rejected[id] = err
}

func (m *memoryStore) Ping(context.Context) error { return m.failure() }

func (m *memoryStore) Online(context.Context) bool { return m.failure() == nil }

func (m *memoryStore) failure() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *memoryStore) Put(_ context.Context, collection string, doc models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if err := m.rejected[doc.ID]; err != nil {
		return err
	}
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]models.Document)
	}
	doc.Fields = maps.Clone(doc.Fields)
	m.docs[collection][doc.ID] = doc
	m.puts++
	return nil
}

func (m *memoryStore) Get(_ context.Context, collection, id, ownerID string) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.Document{}, m.err
	}
	doc, ok := m.docs[collection][id]
	if !ok || doc.OwnerID != ownerID {
		return models.Document{}, adapter.ErrNotFound
	}
	return doc, nil
}

func (m *memoryStore) ListByOwner(_ context.Context, collection, ownerID string) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var docs []models.Document
	for _, doc := range m.docs[collection] {
		if doc.OwnerID == ownerID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *memoryStore) Delete(_ context.Context, collection, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if doc, ok := m.docs[collection][id]; ok && doc.OwnerID == ownerID {
		delete(m.docs[collection], id)
	}
	return nil
}

func (m *memoryStore) DeleteByOwner(_ context.Context, collection, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for id, doc := range m.docs[collection] {
		if doc.OwnerID == ownerID {
			delete(m.docs[collection], id)
		}
	}
	return nil
}

func (m *memoryStore) ids(collection string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.docs[collection]))
	for id := range m.docs[collection] {
		ids = append(ids, id)
	}
	return ids
}

// recordingScheduler запоминает заявки и выполняет их по требованию теста.
type recordingScheduler struct {
	mu        sync.Mutex
	requests  map[string]workers.Request
	enqueued  []string
	cancelled int
}

func newRecordingScheduler() *recordingScheduler {
	return &recordingScheduler{requests: make(map[string]workers.Request)}
}

func (s *recordingScheduler) Enqueue(req workers.Request) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.Name]; ok && req.Policy == workers.Keep {
		return false, nil
	}
	s.requests[req.Name] = req
	s.enqueued = append(s.enqueued, req.Name)
	return true, nil
}

func (s *recordingScheduler) CancelUnique(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.requests[name]
	delete(s.requests, name)
	return ok
}

func (s *recordingScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[string]workers.Request)
	s.cancelled++
}

func (s *recordingScheduler) request(name string) (workers.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[name]
	return req, ok
}

// run выполняет ожидающую задачу name, как это сделал бы планировщик.
func (s *recordingScheduler) run(t *testing.T, name string) error {
	t.Helper()
	s.mu.Lock()
	req, ok := s.requests[name]
	delete(s.requests, name)
	s.mu.Unlock()

	require.True(t, ok, "work %s is not enqueued", name)
	return req.Job(context.Background())
}

type testClient struct {
	*ClientServices
	storages  *store.ClientStorages
	remote    *memoryStore
	scheduler *recordingScheduler
}

func newTestClient(t *testing.T, policy models.ConflictPolicy) *testClient {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)

	remote := newMemoryStore()
	scheduler := newRecordingScheduler()
	cfg := &config.ClientConfig{
		Workers: config.ClientWorkers{
			SyncInterval:   15 * time.Minute,
			SyncFlex:       5 * time.Minute,
			ListenInterval: time.Minute,
			MaxAttempts:    3,
			RetryBackoff:   time.Second,
		},
		Sync: config.ClientSync{ConflictPolicy: string(policy)},
	}

	services, err := NewClientServices(storages, remote, scheduler, cfg, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		services.Close()
		_ = storages.Close()
	})

	return &testClient{ClientServices: services, storages: storages, remote: remote, scheduler: scheduler}
}

func beer(date string) models.AlcoholForm {
	return models.AlcoholForm{DrinkName: "Lager", Milliliters: "500", Percentage: "5", Date: date}
}
