package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/beer-battle/internal/adapter"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

func TestKindOf(t *testing.T) {
	validationErr := validators.NewEntityValidator().Validate(context.Background(), models.Evento{ID: "1", OwnerID: "o"})

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: validationErr, want: KindValidation},
		{name: "invalid data", err: fmt.Errorf("put: %w", ErrInvalidDataProvided), want: KindValidation},
		{name: "local not found", err: fmt.Errorf("get: %w", store.ErrRecordNotFound), want: KindNotFound},
		{name: "remote not found", err: adapter.ErrNotFound, want: KindNotFound},
		{name: "document not found", err: ErrDocumentNotFound, want: KindNotFound},
		{name: "busy local db", err: fmt.Errorf("%w: %w", ErrTemporary, errors.New("database is locked")), want: KindRetryable},
		{name: "transport", err: fmt.Errorf("list: %w", adapter.ErrTransport), want: KindRetryable},
		{name: "5xx", err: adapter.ErrServerUnavailable, want: KindRetryable},
		{name: "deadline", err: context.DeadlineExceeded, want: KindRetryable},
		{name: "cancelled", err: context.Canceled, want: KindPermanent},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: KindPermanent},
		{name: "unknown", err: errors.New("boom"), want: KindPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
			assert.Equal(t, tt.want == KindRetryable, IsRetryable(tt.err))
		})
	}
}

func TestLocalErrors_Wrap(t *testing.T) {
	busy := errors.New("database is locked")
	l := localErrors{retryable: func(err error) bool { return errors.Is(err, busy) }}

	assert.NoError(t, l.wrap(nil))
	assert.ErrorIs(t, l.wrap(busy), ErrTemporary)
	assert.ErrorIs(t, l.wrap(busy), busy)

	other := errors.New("constraint failed")
	assert.Equal(t, other, l.wrap(other))
}
