package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/core/domain"
)

// BookmarkRepositoryPort - контракт внешнего хранилища закладок.
type BookmarkRepositoryPort interface {
	// Add не считает повторную вставку ошибкой и сообщает, была ли запись создана.
	Add(ctx context.Context, bookmark domain.Bookmark) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, contentID string) (bool, error)
	// RemoveMany возвращает идентификаторы, которые действительно были удалены.
	RemoveMany(ctx context.Context, userID uuid.UUID, contentIDs []string) ([]string, error)
	Exists(ctx context.Context, userID uuid.UUID, contentID string) (bool, error)
	FindPaginatedByUser(ctx context.Context, userID uuid.UUID, sortBy domain.SortKey, limit, offset int) (*domain.PaginatedBookmarks, error)
}
