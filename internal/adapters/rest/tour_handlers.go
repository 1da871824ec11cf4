package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/port"
	"github.com/wojg58/Thursday/internal/core/port/usecases_port"
)

// TourHandler - публичные ручки каталога: список, карта, карточка, регионы.
type TourHandler struct {
	listUC   usecases_port.ListToursUseCasePort
	detailUC usecases_port.GetTourDetailUseCasePort
	mapUC    usecases_port.GetMapMarkersUseCasePort
	areasUC  usecases_port.ListAreaCodesUseCasePort
}

func NewTourHandler(
	listUC usecases_port.ListToursUseCasePort,
	detailUC usecases_port.GetTourDetailUseCasePort,
	mapUC usecases_port.GetMapMarkersUseCasePort,
	areasUC usecases_port.ListAreaCodesUseCasePort,
) *TourHandler {
	return &TourHandler{
		listUC:   listUC,
		detailUC: detailUC,
		mapUC:    mapUC,
		areasUC:  areasUC,
	}
}

// ListTours обрабатывает GET /api/v1/tours
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	descriptor := descriptorFromQuery(r)
	page := intParam(r, "page", 1)
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "ListTours",
		"mode":    descriptor.Mode,
		"page":    page,
	})

	result, err := h.listUC.Execute(r.Context(), descriptor, page)
	if err != nil {
		logger.Error("List tours use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusOK, ListToursResponse{
		Data:    toTourItemResponses(result.Items),
		Total:   result.TotalCount,
		Page:    result.Page,
		PerPage: result.PerPage,
		HasMore: result.HasMore,
	})
}

// GetMapMarkers обрабатывает GET /api/v1/tours/map
func (h *TourHandler) GetMapMarkers(w http.ResponseWriter, r *http.Request) {
	descriptor := descriptorFromQuery(r)
	limit := intParam(r, "limit", 0)
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetMapMarkers",
		"limit":   limit,
	})

	view, err := h.mapUC.Execute(r.Context(), descriptor, limit)
	if err != nil {
		logger.Error("Get map markers use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusOK, toMapViewResponse(view))
}

// GetTourDetail обрабатывает GET /api/v1/tours/{contentID}?contentTypeId=
func (h *TourHandler) GetTourDetail(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")
	contentTypeID := r.URL.Query().Get("contentTypeId")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "GetTourDetail",
		"content_id": contentID,
	})

	detail, err := h.detailUC.Execute(r.Context(), contentID, contentTypeID)
	if err != nil {
		logger.Error("Get tour detail use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	RespondWithJSON(w, http.StatusOK, toTourDetailResponse(detail))
}

// ListAreaCodes обрабатывает GET /api/v1/areas. С ?areaCode= отдает подрайоны.
func (h *TourHandler) ListAreaCodes(w http.ResponseWriter, r *http.Request) {
	parent := r.URL.Query().Get("areaCode")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "ListAreaCodes",
		"parent":  parent,
	})

	codes, err := h.areasUC.Execute(r.Context(), parent)
	if err != nil {
		logger.Error("List area codes use case failed", err, nil)
		writeError(w, err, http.StatusBadGateway)
		return
	}

	response := make([]AreaCodeResponse, len(codes))
	for i, c := range codes {
		response[i] = AreaCodeResponse{Code: c.Code, Name: c.Name}
	}
	RespondWithJSON(w, http.StatusOK, response)
}
