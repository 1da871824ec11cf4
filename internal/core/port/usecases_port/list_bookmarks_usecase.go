package usecases_port

import (
	"context"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/domain"
)

type ListBookmarksUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, sortBy domain.SortKey, limit, offset int) (*domain.PaginatedBookmarks, error)
}
