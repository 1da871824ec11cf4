package port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

// BookmarkEventsPort публикует события об изменении закладок.
type BookmarkEventsPort interface {
	PublishAdded(ctx context.Context, event domain.BookmarkEvent) error
	PublishRemoved(ctx context.Context, event domain.BookmarkEvent) error
}
