package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/listing"
	"github.com/wojg58/Thursday/internal/core/port"
)

// firstPage загружает и собирает первую страницу ленты.
func firstPage(ctx context.Context, fetcher accumulator.PageFetcher, d domain.FeedDescriptor) ([]domain.ListingItem, int, error) {
	raw, err := fetcher.FetchPage(ctx, listing.BuildUpstreamQuery(d, 1, listing.PageSize))
	if err != nil {
		return nil, 0, err
	}
	return listing.Compose(raw.Items, d), raw.TotalCount, nil
}

func snapshotOf(id uuid.UUID, acc *accumulator.Accumulator) *domain.FeedState {
	state := acc.Snapshot()
	state.ID = id
	return &state
}

type OpenFeedUseCase struct {
	fetcher  *tourPageFetcher
	registry port.FeedRegistryPort
}

func NewOpenFeedUseCase(api port.TourAPIPort, registry port.FeedRegistryPort) *OpenFeedUseCase {
	return &OpenFeedUseCase{fetcher: &tourPageFetcher{api: api}, registry: registry}
}

func (uc *OpenFeedUseCase) Execute(ctx context.Context, descriptor domain.FeedDescriptor) (*domain.FeedState, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(descriptorFields(descriptor)).WithFields(port.Fields{
		"use_case": "OpenFeed",
	})
	ucLogger.Info("Use case started", nil)

	first, total, err := firstPage(ctx, uc.fetcher, descriptor)
	if err != nil {
		ucLogger.Error("Failed to fetch first page", err, nil)
		return nil, fmt.Errorf("failed to fetch first page: %w", err)
	}

	acc := accumulator.New(uc.fetcher, descriptor)
	acc.Reset(first, total, descriptor)

	id, err := uc.registry.Create(ctx, acc)
	if err != nil {
		ucLogger.Error("Failed to register feed", err, nil)
		return nil, fmt.Errorf("failed to register feed: %w", err)
	}

	state := snapshotOf(id, acc)
	ucLogger.Info("Use case finished successfully", port.Fields{
		"feed_id":     id,
		"items":       len(state.Items),
		"total_count": state.TotalCount,
		"has_more":    state.HasMore,
	})
	return state, nil
}

type LoadMoreFeedUseCase struct {
	registry port.FeedRegistryPort
}

func NewLoadMoreFeedUseCase(registry port.FeedRegistryPort) *LoadMoreFeedUseCase {
	return &LoadMoreFeedUseCase{registry: registry}
}

// Execute догружает следующую страницу. Исчерпанная лента и лента, сброшенная
// во время загрузки, не считаются ошибкой: возвращается текущее состояние.
func (uc *LoadMoreFeedUseCase) Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedState, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "LoadMoreFeed",
		"feed_id":  feedID,
	})

	acc, err := uc.registry.Get(ctx, feedID)
	if err != nil {
		ucLogger.Warn("Feed lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	added, err := acc.LoadMore(ctx)
	switch {
	case err == nil:
		ucLogger.Info("Page appended", port.Fields{"added": added})
	case errors.Is(err, accumulator.ErrExhausted):
		ucLogger.Debug("Feed exhausted, nothing to load", nil)
	case errors.Is(err, accumulator.ErrSuperseded):
		ucLogger.Info("Loaded page discarded after reset", nil)
	case errors.Is(err, accumulator.ErrLoadInFlight):
		ucLogger.Debug("Load already in flight", nil)
		return nil, err
	default:
		ucLogger.Error("Failed to load next page", err, nil)
		return nil, fmt.Errorf("failed to load next page: %w", err)
	}

	return snapshotOf(feedID, acc), nil
}

type RefreshFeedUseCase struct {
	fetcher  *tourPageFetcher
	registry port.FeedRegistryPort
}

func NewRefreshFeedUseCase(api port.TourAPIPort, registry port.FeedRegistryPort) *RefreshFeedUseCase {
	return &RefreshFeedUseCase{fetcher: &tourPageFetcher{api: api}, registry: registry}
}

func (uc *RefreshFeedUseCase) Execute(ctx context.Context, feedID uuid.UUID, descriptor domain.FeedDescriptor) (*domain.FeedState, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(descriptorFields(descriptor)).WithFields(port.Fields{
		"use_case": "RefreshFeed",
		"feed_id":  feedID,
	})

	acc, err := uc.registry.Get(ctx, feedID)
	if err != nil {
		ucLogger.Warn("Feed lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	first, total, err := firstPage(ctx, uc.fetcher, descriptor)
	if err != nil {
		ucLogger.Error("Failed to fetch first page", err, nil)
		return nil, fmt.Errorf("failed to fetch first page: %w", err)
	}

	changed := acc.Reset(first, total, descriptor)
	ucLogger.Info("Feed refreshed", port.Fields{"changed": changed, "total_count": total})
	return snapshotOf(feedID, acc), nil
}

type GetFeedUseCase struct {
	registry port.FeedRegistryPort
}

func NewGetFeedUseCase(registry port.FeedRegistryPort) *GetFeedUseCase {
	return &GetFeedUseCase{registry: registry}
}

func (uc *GetFeedUseCase) Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedState, error) {
	acc, err := uc.registry.Get(ctx, feedID)
	if err != nil {
		return nil, err
	}
	return snapshotOf(feedID, acc), nil
}
