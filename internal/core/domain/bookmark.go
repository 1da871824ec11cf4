package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark - закладка пользователя. Уникальна по (UserID, ContentID).
type Bookmark struct {
	UserID        uuid.UUID
	ContentID     string
	ContentTypeID string
	Title         string
	FirstImage    string
	Addr          string
	CreatedAt     time.Time
}

// PaginatedBookmarks - страница закладок от репозитория.
type PaginatedBookmarks struct {
	Bookmarks    []Bookmark
	TotalCount   int64
	CurrentPage  int
	ItemsPerPage int
}

// BookmarkEvent публикуется после изменения закладок.
type BookmarkEvent struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	ContentID  string
	OccurredAt time.Time
}
