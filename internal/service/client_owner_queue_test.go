// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerQueue_SerializesOneOwner(t *testing.T) {
	q := newOwnerQueue()
	defer q.Close()

	var (
		running atomic.Int32
		overlap atomic.Bool
		order   []int
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := q.Do(context.Background(), "owner-1", func(context.Context) error {
				if running.Add(1) > 1 {
					overlap.Store(true)
				}
				time.Sleep(time.Millisecond)
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load(), "tasks of one owner must not overlap")
	assert.Len(t, order, 20)
}

func TestOwnerQueue_OwnersRunIndependently(t *testing.T) {
	q := newOwnerQueue()
	defer q.Close()

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = q.Do(context.Background(), "slow", func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// другой владелец не ждёт медленную задачу
	err := q.Do(context.Background(), "fast", func(context.Context) error { return nil })
	require.NoError(t, err)

	close(release)
}

func TestOwnerQueue_ReturnsTaskError(t *testing.T) {
	q := newOwnerQueue()
	defer q.Close()

	boom := errors.New("boom")
	err := q.Do(context.Background(), "owner-1", func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestOwnerQueue_CancelledContextSkipsTask(t *testing.T) {
	q := newOwnerQueue()
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := q.Do(ctx, "owner-1", func(context.Context) error {
		called.Store(true)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestOwnerQueue_Close(t *testing.T) {
	q := newOwnerQueue()
	require.NoError(t, q.Do(context.Background(), "owner-1", func(context.Context) error { return nil }))

	q.Close()
	q.Close()

	err := q.Do(context.Background(), "owner-1", func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrOwnerQueueClosed)
}
