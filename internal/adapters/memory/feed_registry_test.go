package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
)

func newFeed() *accumulator.Accumulator {
	return accumulator.New(nil, domain.FeedDescriptor{SortBy: domain.SortLatest})
}

func TestFeedRegistry_CreateGetDelete(t *testing.T) {
	r := NewFeedRegistry()
	ctx := context.Background()
	feed := newFeed()

	id, err := r.Create(ctx, feed)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, feed, got)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrFeedNotFound)
	assert.ErrorIs(t, r.Delete(ctx, id), domain.ErrFeedNotFound)
}

func TestFeedRegistry_EvictIdle(t *testing.T) {
	r := NewFeedRegistry()
	ctx := context.Background()
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	r.now = func() time.Time { return clock }

	stale, err := r.Create(ctx, newFeed())
	require.NoError(t, err)
	fresh, err := r.Create(ctx, newFeed())
	require.NoError(t, err)

	clock = start.Add(20 * time.Minute)
	_, err = r.Get(ctx, fresh)
	require.NoError(t, err)

	evicted := r.EvictIdle(start.Add(31*time.Minute), 30*time.Minute)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, r.Len())

	_, err = r.Get(ctx, stale)
	assert.ErrorIs(t, err, domain.ErrFeedNotFound)
}
