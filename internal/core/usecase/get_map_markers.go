package usecase

import (
	"context"
	"fmt"

	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/geo"
	"github.com/wojg58/Thursday/internal/core/listing"
	"github.com/wojg58/Thursday/internal/core/port"
)

// MaxMarkers - верхняя граница numOfRows для карты.
const MaxMarkers = 100

type GetMapMarkersUseCase struct {
	fetcher *tourPageFetcher
}

func NewGetMapMarkersUseCase(api port.TourAPIPort) *GetMapMarkersUseCase {
	return &GetMapMarkersUseCase{fetcher: &tourPageFetcher{api: api}}
}

func (uc *GetMapMarkersUseCase) Execute(ctx context.Context, descriptor domain.FeedDescriptor, limit int) (*domain.MapView, error) {
	if limit < 1 {
		limit = listing.PageSize
	}
	if limit > MaxMarkers {
		limit = MaxMarkers
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(descriptorFields(descriptor)).WithFields(port.Fields{
		"use_case": "GetMapMarkers",
		"limit":    limit,
	})
	ucLogger.Info("Use case started", nil)

	raw, err := uc.fetcher.FetchPage(ctx, listing.BuildUpstreamQuery(descriptor, 1, limit))
	if err != nil {
		ucLogger.Error("Failed to fetch listing page", err, nil)
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	items := listing.Compose(raw.Items, descriptor)
	markers := geo.BuildMarkers(items)
	center, zoom, usedDefault := geo.CentroidOrDefault(items)

	view := &domain.MapView{
		Center:            center,
		Zoom:              zoom,
		UsedDefaultCenter: usedDefault,
		Markers:           markers,
		Clusters:          geo.ClusterMarkers(markers, geo.ClusterPrecisionForZoom(zoom)),
		TotalCount:        raw.TotalCount,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"markers":       len(markers),
		"clusters":      len(view.Clusters),
		"default_focus": usedDefault,
	})
	return view, nil
}
