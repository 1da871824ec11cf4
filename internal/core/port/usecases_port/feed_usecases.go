package usecases_port

import (
	"context"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/domain"
)

type OpenFeedUseCasePort interface {
	Execute(ctx context.Context, descriptor domain.FeedDescriptor) (*domain.FeedState, error)
}

type LoadMoreFeedUseCasePort interface {
	Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedState, error)
}

type RefreshFeedUseCasePort interface {
	Execute(ctx context.Context, feedID uuid.UUID, descriptor domain.FeedDescriptor) (*domain.FeedState, error)
}

type GetFeedUseCasePort interface {
	Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedState, error)
}
