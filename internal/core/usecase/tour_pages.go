package usecase

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

// tourPageFetcher выбирает операцию TourAPI по режиму запроса.
type tourPageFetcher struct {
	api port.TourAPIPort
}

var _ accumulator.PageFetcher = (*tourPageFetcher)(nil)

func (f *tourPageFetcher) FetchPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	if q.Mode == domain.FeedModeKeyword {
		return f.api.SearchKeyword(ctx, q)
	}
	return f.api.ListByArea(ctx, q)
}

func descriptorFields(d domain.FeedDescriptor) port.Fields {
	return port.Fields{
		"mode":          d.Mode,
		"area_code":     d.AreaCode,
		"sub_area_code": d.SubAreaCode,
		"categories":    d.CategoryCodes,
		"sort_by":       d.SortBy,
		"keyword":       d.Keyword,
	}
}
