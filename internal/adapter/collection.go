package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beer-battle/models"
)

// Collection is a [DocumentStore] collection bound to the entity type T.
type Collection[T any] struct {
	store  DocumentStore
	name   string
	encode func(T) models.Document
	decode func(models.Document) (T, error)
}

func NewCollection[T any](store DocumentStore, name string, encode func(T) models.Document, decode func(models.Document) (T, error)) *Collection[T] {
	return &Collection[T]{store: store, name: name, encode: encode, decode: decode}
}

// NewAlcoholRecords binds store to the alcohol record collection.
func NewAlcoholRecords(store DocumentStore) *Collection[models.AlcoholRecord] {
	return NewCollection(store, models.CollectionAlcoholRecords, models.AlcoholRecord.ToDocument, models.AlcoholRecordFromDocument)
}

// NewEvents binds store to the event collection.
func NewEvents(store DocumentStore) *Collection[models.Evento] {
	return NewCollection(store, models.CollectionEvents, models.Evento.ToDocument, models.EventoFromDocument)
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Put(ctx context.Context, v T) error {
	return c.store.Put(ctx, c.name, c.encode(v))
}

func (c *Collection[T]) Get(ctx context.Context, id, ownerID string) (T, error) {
	var zero T

	doc, err := c.store.Get(ctx, c.name, id, ownerID)
	if err != nil {
		return zero, err
	}

	v, err := c.decode(doc)
	if err != nil {
		return zero, fmt.Errorf("%w: %s/%s: %w", ErrMalformedDocument, c.name, doc.ID, err)
	}
	return v, nil
}

// ListByOwner returns the remote set of ownerID. One undecodable document
// fails the whole listing, since a partial set would read as deletions.
func (c *Collection[T]) ListByOwner(ctx context.Context, ownerID string) ([]T, error) {
	docs, err := c.store.ListByOwner(ctx, c.name, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := c.decode(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrMalformedDocument, c.name, doc.ID, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id, ownerID string) error {
	return c.store.Delete(ctx, c.name, id, ownerID)
}

func (c *Collection[T]) DeleteByOwner(ctx context.Context, ownerID string) error {
	return c.store.DeleteByOwner(ctx, c.name, ownerID)
}
