package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/accumulator"
)

// FeedRegistryPort хранит ленты бесконечной прокрутки. Каждая лента
// принадлежит одному представлению списка и ни с кем не делится.
type FeedRegistryPort interface {
	Create(ctx context.Context, feed *accumulator.Accumulator) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*accumulator.Accumulator, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// EvictIdle удаляет ленты, не тронутые дольше ttl, и возвращает их число.
	EvictIdle(now time.Time, ttl time.Duration) int
}
