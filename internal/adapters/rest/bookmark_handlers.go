package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
	"github.com/wojg58/Thursday/internal/core/port/usecases_port"
)

const defaultBookmarksLimit = 20

// BookmarkHandler - ручки закладок текущего пользователя.
type BookmarkHandler struct {
	addUC        usecases_port.AddBookmarkUseCasePort
	removeUC     usecases_port.RemoveBookmarkUseCasePort
	removeManyUC usecases_port.RemoveBookmarksUseCasePort
	checkUC      usecases_port.CheckBookmarkUseCasePort
	listUC       usecases_port.ListBookmarksUseCasePort
}

func NewBookmarkHandler(
	addUC usecases_port.AddBookmarkUseCasePort,
	removeUC usecases_port.RemoveBookmarkUseCasePort,
	removeManyUC usecases_port.RemoveBookmarksUseCasePort,
	checkUC usecases_port.CheckBookmarkUseCasePort,
	listUC usecases_port.ListBookmarksUseCasePort,
) *BookmarkHandler {
	return &BookmarkHandler{
		addUC:        addUC,
		removeUC:     removeUC,
		removeManyUC: removeManyUC,
		checkUC:      checkUC,
		listUC:       listUC,
	}
}

// ListBookmarks обрабатывает GET /api/v1/bookmarks?sort=&limit=&offset=
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListBookmarks"})

	userID, ok := contextkeys.UserIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	limit := intParam(r, "limit", defaultBookmarksLimit)
	offset := intParam(r, "offset", 0)
	if limit <= 0 {
		limit = defaultBookmarksLimit
	}
	if offset < 0 {
		offset = 0
	}
	sortBy := domain.SortKey(r.URL.Query().Get("sort"))

	handlerLogger := logger.WithFields(port.Fields{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	})

	page, err := h.listUC.Execute(r.Context(), userID, sortBy, limit, offset)
	if err != nil {
		handlerLogger.Error("List bookmarks use case failed", err, nil)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	response := PaginatedBookmarksResponse{
		Data:    make([]BookmarkResponse, len(page.Bookmarks)),
		Total:   page.TotalCount,
		Page:    page.CurrentPage,
		PerPage: page.ItemsPerPage,
	}
	for i, b := range page.Bookmarks {
		response.Data[i] = BookmarkResponse{
			ContentID:     b.ContentID,
			ContentTypeID: b.ContentTypeID,
			Title:         b.Title,
			FirstImage:    b.FirstImage,
			Addr:          b.Addr,
			CreatedAt:     b.CreatedAt,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// AddBookmark обрабатывает POST /api/v1/bookmarks. Повторное добавление
// отвечает 200 вместо 201.
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddBookmark"})

	userID, ok := contextkeys.UserIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var req AddBookmarkRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid add bookmark request", port.Fields{"error": err.Error()})
		writeError(w, err, http.StatusBadRequest)
		return
	}

	created, err := h.addUC.Execute(r.Context(), domain.Bookmark{
		UserID:        userID,
		ContentID:     req.ContentID,
		ContentTypeID: req.ContentTypeID,
		Title:         req.Title,
		FirstImage:    req.FirstImage,
		Addr:          req.Addr,
	})
	if err != nil {
		logger.Error("Add bookmark use case failed", err, port.Fields{"user_id": userID, "content_id": req.ContentID})
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	RespondWithJSON(w, status, AddBookmarkResponse{ContentID: req.ContentID, Created: created})
}

// CheckBookmark обрабатывает GET /api/v1/bookmarks/{contentID}
func (h *BookmarkHandler) CheckBookmark(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CheckBookmark"})

	userID, ok := contextkeys.UserIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}
	contentID := chi.URLParam(r, "contentID")

	exists, err := h.checkUC.Execute(r.Context(), userID, contentID)
	if err != nil {
		logger.Error("Check bookmark use case failed", err, port.Fields{"user_id": userID, "content_id": contentID})
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	RespondWithJSON(w, http.StatusOK, BookmarkExistsResponse{ContentID: contentID, Bookmarked: exists})
}

// RemoveBookmark обрабатывает DELETE /api/v1/bookmarks/{contentID}
func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveBookmark"})

	userID, ok := contextkeys.UserIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}
	contentID := chi.URLParam(r, "contentID")

	if err := h.removeUC.Execute(r.Context(), userID, contentID); err != nil {
		logger.Error("Remove bookmark use case failed", err, port.Fields{"user_id": userID, "content_id": contentID})
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveBookmarks обрабатывает DELETE /api/v1/bookmarks с телом {"content_ids": [...]}
func (h *BookmarkHandler) RemoveBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveBookmarks"})

	userID, ok := contextkeys.UserIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var req RemoveBookmarksRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid remove bookmarks request", port.Fields{"error": err.Error()})
		writeError(w, err, http.StatusBadRequest)
		return
	}

	removed, err := h.removeManyUC.Execute(r.Context(), userID, req.ContentIDs)
	if err != nil {
		logger.Error("Remove bookmarks use case failed", err, port.Fields{"user_id": userID, "requested": len(req.ContentIDs)})
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	if removed == nil {
		removed = []string{}
	}

	RespondWithJSON(w, http.StatusOK, RemoveBookmarksResponse{Removed: removed})
}
