// Package memory хранит ленты бесконечной прокрутки в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

type feedEntry struct {
	feed     *accumulator.Accumulator
	lastSeen time.Time
}

// FeedRegistry - потокобезопасная карта лент. Каждое обращение продлевает жизнь ленты.
type FeedRegistry struct {
	mu    sync.Mutex
	feeds map[uuid.UUID]*feedEntry
	now   func() time.Time
}

func NewFeedRegistry() *FeedRegistry {
	return &FeedRegistry{
		feeds: make(map[uuid.UUID]*feedEntry),
		now:   time.Now,
	}
}

var _ port.FeedRegistryPort = (*FeedRegistry)(nil)

func (r *FeedRegistry) Create(_ context.Context, feed *accumulator.Accumulator) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.feeds[id] = &feedEntry{feed: feed, lastSeen: r.now()}
	return id, nil
}

func (r *FeedRegistry) Get(_ context.Context, id uuid.UUID) (*accumulator.Accumulator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.feeds[id]
	if !ok {
		return nil, domain.ErrFeedNotFound
	}
	entry.lastSeen = r.now()
	return entry.feed, nil
}

func (r *FeedRegistry) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.feeds[id]; !ok {
		return domain.ErrFeedNotFound
	}
	delete(r.feeds, id)
	return nil
}

func (r *FeedRegistry) EvictIdle(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.feeds {
		if now.Sub(entry.lastSeen) > ttl {
			delete(r.feeds, id)
			evicted++
		}
	}
	return evicted
}

func (r *FeedRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.feeds)
}

// RunJanitor раз в interval выселяет ленты, простаивающие дольше ttl. Блокирует до отмены ctx.
func RunJanitor(ctx context.Context, registry port.FeedRegistryPort, interval, ttl time.Duration, logger port.LoggerPort) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := registry.EvictIdle(now, ttl); n > 0 {
				logger.Info("Idle feeds evicted", port.Fields{"count": n, "ttl": ttl.String()})
			}
		}
	}
}
