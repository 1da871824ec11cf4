package usecases_port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

type AddBookmarkUseCasePort interface {
	// Возвращает false, если закладка уже была.
	Execute(ctx context.Context, bookmark domain.Bookmark) (bool, error)
}
