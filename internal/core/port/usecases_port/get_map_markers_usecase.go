package usecases_port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

type GetMapMarkersUseCasePort interface {
	Execute(ctx context.Context, descriptor domain.FeedDescriptor, limit int) (*domain.MapView, error)
}
