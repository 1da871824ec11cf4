package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type RemoveBookmarkUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, contentID string) error
}

type RemoveBookmarksUseCasePort interface {
	// Возвращает идентификаторы, которые действительно были удалены
	Execute(ctx context.Context, userID uuid.UUID, contentIDs []string) ([]string, error)
}
