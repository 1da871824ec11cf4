package tourapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wojg58/Thursday/internal/core/domain"
)

func listParams(q domain.UpstreamQuery) url.Values {
	params := url.Values{}
	params.Set("numOfRows", itoa(q.NumOfRows))
	params.Set("pageNo", itoa(q.PageNo))
	if q.Arrange != "" {
		params.Set("arrange", q.Arrange)
	}
	if q.AreaCode != "" {
		params.Set("areaCode", q.AreaCode)
	}
	if q.ContentTypeID != "" {
		params.Set("contentTypeId", q.ContentTypeID)
	}
	return params
}

func (a *TourAPIAdapter) ListByArea(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	return a.fetchList(ctx, opAreaBasedList, q, listParams(q))
}

func (a *TourAPIAdapter) SearchKeyword(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", domain.ErrInvalidInput)
	}
	params := listParams(q)
	params.Set("keyword", keyword)
	return a.fetchList(ctx, opSearchKeyword, q, params)
}

func (a *TourAPIAdapter) fetchList(ctx context.Context, operation string, q domain.UpstreamQuery, params url.Values) (*domain.ListingPage, error) {
	body, err := a.call(ctx, operation, params)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeItems[listItemDTO](body.Items)
	if err != nil {
		return nil, fmt.Errorf("tourapi %s: %w", operation, err)
	}

	page := &domain.ListingPage{
		Items:      make([]domain.ListingItem, 0, len(dtos)),
		TotalCount: int(body.TotalCount),
		PageNo:     q.PageNo,
		NumOfRows:  q.NumOfRows,
	}
	for _, d := range dtos {
		page.Items = append(page.Items, toListingItem(d))
	}
	return page, nil
}
