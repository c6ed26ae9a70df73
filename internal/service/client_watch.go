package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/beer-battle/internal/logger"
)

// watchHub wakes up the streams of an owner after every change of the owner's
// local data.
type watchHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func newWatchHub() *watchHub {
	return &watchHub{subs: make(map[string]map[int]chan struct{})}
}

func (h *watchHub) subscribe(ownerID string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	signal := make(chan struct{}, 1)
	if h.subs[ownerID] == nil {
		h.subs[ownerID] = make(map[int]chan struct{})
	}
	h.subs[ownerID][id] = signal

	return signal, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		delete(h.subs[ownerID], id)
		if len(h.subs[ownerID]) == 0 {
			delete(h.subs, ownerID)
		}
	}
}

// notify marks every stream of ownerID stale. It never blocks.
func (h *watchHub) notify(ownerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, signal := range h.subs[ownerID] {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
}

// watch streams the result of load: once on subscription and again after
// every notification for ownerID. Only the newest value waits in the channel,
// so a slow reader skips intermediate states. The channel is closed when ctx
// is done.
func watch[T any](ctx context.Context, hub *watchHub, ownerID string, load func(ctx context.Context) ([]T, error)) <-chan []T {
	out := make(chan []T, 1)
	signal, unsubscribe := hub.subscribe(ownerID)

	go func() {
		defer close(out)
		defer unsubscribe()

		log := logger.FromContext(ctx)

		for {
			items, err := load(ctx)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				log.Err(err).Str("func", "service.watch").Str("owner_id", ownerID).Msg("failed to load stream value")
			default:
				// drop the stale value before publishing the new one
				select {
				case <-out:
				default:
				}
				out <- items
			}

			select {
			case <-ctx.Done():
				return
			case <-signal:
			}
		}
	}()

	return out
}
