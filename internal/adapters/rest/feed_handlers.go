package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/accumulator"
	"github.com/wojg58/Thursday/internal/core/port"
	"github.com/wojg58/Thursday/internal/core/port/usecases_port"
)

// FeedHandler - ручки ленты с подгрузкой страниц.
type FeedHandler struct {
	openUC    usecases_port.OpenFeedUseCasePort
	getUC     usecases_port.GetFeedUseCasePort
	moreUC    usecases_port.LoadMoreFeedUseCasePort
	refreshUC usecases_port.RefreshFeedUseCasePort
}

func NewFeedHandler(
	openUC usecases_port.OpenFeedUseCasePort,
	getUC usecases_port.GetFeedUseCasePort,
	moreUC usecases_port.LoadMoreFeedUseCasePort,
	refreshUC usecases_port.RefreshFeedUseCasePort,
) *FeedHandler {
	return &FeedHandler{openUC: openUC, getUC: getUC, moreUC: moreUC, refreshUC: refreshUC}
}

// OpenFeed обрабатывает POST /api/v1/feeds
func (h *FeedHandler) OpenFeed(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "OpenFeed"})

	var req FeedRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid open feed request", port.Fields{"error": err.Error()})
		writeError(w, err, http.StatusBadRequest)
		return
	}

	state, err := h.openUC.Execute(r.Context(), descriptorFromRequest(req))
	if err != nil {
		logger.Error("Open feed use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toFeedResponse(state))
}

// GetFeed обрабатывает GET /api/v1/feeds/{feedID}
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	feedID, ok := feedIDParam(w, r)
	if !ok {
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeed", "feed_id": feedID})

	state, err := h.getUC.Execute(r.Context(), feedID)
	if err != nil {
		logger.Warn("Get feed use case failed", port.Fields{"error": err.Error()})
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	RespondWithJSON(w, http.StatusOK, toFeedResponse(state))
}

// LoadMore обрабатывает POST /api/v1/feeds/{feedID}/more
func (h *FeedHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	feedID, ok := feedIDParam(w, r)
	if !ok {
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "LoadMore", "feed_id": feedID})

	state, err := h.moreUC.Execute(r.Context(), feedID)
	if err != nil {
		// повторный запрос во время загрузки - не сбой
		if errors.Is(err, accumulator.ErrLoadInFlight) {
			logger.Debug("Load already in flight, request skipped", nil)
		} else {
			logger.Error("Load more use case failed", err, nil)
		}
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusOK, toFeedResponse(state))
}

// RefreshFeed обрабатывает PUT /api/v1/feeds/{feedID}: новые параметры выборки.
func (h *FeedHandler) RefreshFeed(w http.ResponseWriter, r *http.Request) {
	feedID, ok := feedIDParam(w, r)
	if !ok {
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RefreshFeed", "feed_id": feedID})

	var req FeedRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid refresh feed request", port.Fields{"error": err.Error()})
		writeError(w, err, http.StatusBadRequest)
		return
	}

	state, err := h.refreshUC.Execute(r.Context(), feedID, descriptorFromRequest(req))
	if err != nil {
		logger.Error("Refresh feed use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusOK, toFeedResponse(state))
}

func feedIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	feedID, err := uuid.Parse(chi.URLParam(r, "feedID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid feed ID format")
		return uuid.Nil, false
	}
	return feedID, true
}
