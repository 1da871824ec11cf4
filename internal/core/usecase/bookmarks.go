package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

// newBookmarkEvent заполняет идентификатор и время события.
func newBookmarkEvent(userID uuid.UUID, contentID string) domain.BookmarkEvent {
	return domain.BookmarkEvent{
		EventID:    uuid.New(),
		UserID:     userID,
		ContentID:  contentID,
		OccurredAt: time.Now().UTC(),
	}
}

type AddBookmarkUseCase struct {
	repo   port.BookmarkRepositoryPort
	events port.BookmarkEventsPort
}

func NewAddBookmarkUseCase(repo port.BookmarkRepositoryPort, events port.BookmarkEventsPort) *AddBookmarkUseCase {
	return &AddBookmarkUseCase{repo: repo, events: events}
}

func (uc *AddBookmarkUseCase) Execute(ctx context.Context, bookmark domain.Bookmark) (bool, error) {
	bookmark.ContentID = strings.TrimSpace(bookmark.ContentID)
	if bookmark.UserID == uuid.Nil || bookmark.ContentID == "" {
		return false, fmt.Errorf("%w: user id and content id are required", domain.ErrInvalidInput)
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "AddBookmark",
		"user_id":    bookmark.UserID,
		"content_id": bookmark.ContentID,
	})
	ucLogger.Info("Use case started", nil)

	created, err := uc.repo.Add(ctx, bookmark)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return false, err
	}

	if created {
		// Закладка уже сохранена, поэтому сбой публикации только логируется.
		if err := uc.events.PublishAdded(ctx, newBookmarkEvent(bookmark.UserID, bookmark.ContentID)); err != nil {
			ucLogger.Warn("Failed to publish bookmark added event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"created": created})
	return created, nil
}

type RemoveBookmarkUseCase struct {
	repo   port.BookmarkRepositoryPort
	events port.BookmarkEventsPort
}

func NewRemoveBookmarkUseCase(repo port.BookmarkRepositoryPort, events port.BookmarkEventsPort) *RemoveBookmarkUseCase {
	return &RemoveBookmarkUseCase{repo: repo, events: events}
}

func (uc *RemoveBookmarkUseCase) Execute(ctx context.Context, userID uuid.UUID, contentID string) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return fmt.Errorf("%w: content id is required", domain.ErrInvalidInput)
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "RemoveBookmark",
		"user_id":    userID,
		"content_id": contentID,
	})
	ucLogger.Info("Use case started", nil)

	removed, err := uc.repo.Remove(ctx, userID, contentID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	if removed {
		if err := uc.events.PublishRemoved(ctx, newBookmarkEvent(userID, contentID)); err != nil {
			ucLogger.Warn("Failed to publish bookmark removed event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"removed": removed})
	return nil
}

type RemoveBookmarksUseCase struct {
	repo   port.BookmarkRepositoryPort
	events port.BookmarkEventsPort
}

func NewRemoveBookmarksUseCase(repo port.BookmarkRepositoryPort, events port.BookmarkEventsPort) *RemoveBookmarksUseCase {
	return &RemoveBookmarksUseCase{repo: repo, events: events}
}

func (uc *RemoveBookmarksUseCase) Execute(ctx context.Context, userID uuid.UUID, contentIDs []string) ([]string, error) {
	ids := make([]string, 0, len(contentIDs))
	seen := make(map[string]struct{}, len(contentIDs))
	for _, id := range contentIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one content id is required", domain.ErrInvalidInput)
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "RemoveBookmarks",
		"user_id":   userID,
		"requested": len(ids),
	})
	ucLogger.Info("Use case started", nil)

	removed, err := uc.repo.RemoveMany(ctx, userID, ids)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	for _, id := range removed {
		if err := uc.events.PublishRemoved(ctx, newBookmarkEvent(userID, id)); err != nil {
			ucLogger.Warn("Failed to publish bookmark removed event", port.Fields{
				"content_id": id,
				"error":      err.Error(),
			})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"removed": len(removed)})
	return removed, nil
}

type CheckBookmarkUseCase struct {
	repo port.BookmarkRepositoryPort
}

func NewCheckBookmarkUseCase(repo port.BookmarkRepositoryPort) *CheckBookmarkUseCase {
	return &CheckBookmarkUseCase{repo: repo}
}

func (uc *CheckBookmarkUseCase) Execute(ctx context.Context, userID uuid.UUID, contentID string) (bool, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return false, fmt.Errorf("%w: content id is required", domain.ErrInvalidInput)
	}
	exists, err := uc.repo.Exists(ctx, userID, contentID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to check bookmark", err, port.Fields{
			"use_case":   "CheckBookmark",
			"user_id":    userID,
			"content_id": contentID,
		})
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

type ListBookmarksUseCase struct {
	repo port.BookmarkRepositoryPort
}

func NewListBookmarksUseCase(repo port.BookmarkRepositoryPort) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{repo: repo}
}

func (uc *ListBookmarksUseCase) Execute(ctx context.Context, userID uuid.UUID, sortBy domain.SortKey, limit, offset int) (*domain.PaginatedBookmarks, error) {
	if sortBy != domain.SortName {
		sortBy = domain.SortLatest
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListBookmarks",
		"user_id":  userID,
		"sort_by":  sortBy,
		"limit":    limit,
		"offset":   offset,
	})
	ucLogger.Info("Use case started", nil)

	page, err := uc.repo.FindPaginatedByUser(ctx, userID, sortBy, limit, offset)
	if err != nil {
		ucLogger.Error("Failed to get bookmarks from repository", err, nil)
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_count":  page.TotalCount,
		"ids_on_page":  len(page.Bookmarks),
		"current_page": page.CurrentPage,
	})
	return page, nil
}
