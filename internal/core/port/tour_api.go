package port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

// TourAPIPort - контракт клиента публичного TourAPI.
// Все методы возвращают *domain.UpstreamError, если resultCode != "0000".
type TourAPIPort interface {
	// ListByArea соответствует areaBasedList2.
	ListByArea(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error)
	// SearchKeyword соответствует searchKeyword2.
	SearchKeyword(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingPage, error)
	// GetCommon возвращает domain.ErrNotFound, если объекта нет.
	GetCommon(ctx context.Context, contentID string) (*domain.CommonRecord, error)
	GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.IntroRecord, error)
	GetImages(ctx context.Context, contentID string) ([]domain.TourImage, error)
	// AreaCodes без parentCode возвращает регионы, с ним - районы региона.
	AreaCodes(ctx context.Context, parentCode string) ([]domain.AreaCode, error)
}
