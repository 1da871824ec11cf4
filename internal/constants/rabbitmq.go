package constants

// Обменник событий закладок (topic)
const (
	BookmarkExchange     = "bookmarks"
	BookmarkExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyBookmarkAdded   = "bookmark.added"
	RoutingKeyBookmarkRemoved = "bookmark.removed"
)

// Типы событий, совпадают с ключами схем в internal/contracts
const (
	EventBookmarkAdded   = "BookmarkAddedEvent"
	EventBookmarkRemoved = "BookmarkRemovedEvent"
	EventVersion         = "1.0.0"
)
