package usecases_port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

type GetTourDetailUseCasePort interface {
	// contentTypeID - подсказка, если категория не придет в detailCommon2.
	Execute(ctx context.Context, contentID, contentTypeID string) (*domain.TourDetail, error)
}
