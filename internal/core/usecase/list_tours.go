package usecase

import (
	"context"
	"fmt"

	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/listing"
	"github.com/wojg58/Thursday/internal/core/port"
)

type ListToursUseCase struct {
	fetcher *tourPageFetcher
}

func NewListToursUseCase(api port.TourAPIPort) *ListToursUseCase {
	return &ListToursUseCase{fetcher: &tourPageFetcher{api: api}}
}

func (uc *ListToursUseCase) Execute(ctx context.Context, descriptor domain.FeedDescriptor, page int) (*domain.ListResult, error) {
	if page < 1 {
		page = 1
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(descriptorFields(descriptor)).WithFields(port.Fields{
		"use_case": "ListTours",
		"page":     page,
	})
	ucLogger.Info("Use case started", nil)

	query := listing.BuildUpstreamQuery(descriptor, page, listing.PageSize)
	raw, err := uc.fetcher.FetchPage(ctx, query)
	if err != nil {
		ucLogger.Error("Failed to fetch listing page", err, nil)
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	items := listing.Compose(raw.Items, descriptor)
	result := &domain.ListResult{
		Items:      items,
		TotalCount: raw.TotalCount,
		Page:       page,
		PerPage:    listing.PageSize,
		HasMore:    len(raw.Items) == listing.PageSize && page*listing.PageSize < raw.TotalCount,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"raw_items":   len(raw.Items),
		"items":       len(items),
		"total_count": raw.TotalCount,
	})
	return result, nil
}
