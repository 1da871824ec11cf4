package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/contact"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/geo"
	"github.com/wojg58/Thursday/internal/core/port"
)

type GetTourDetailUseCase struct {
	api port.TourAPIPort
}

func NewGetTourDetailUseCase(api port.TourAPIPort) *GetTourDetailUseCase {
	return &GetTourDetailUseCase{api: api}
}

// Execute собирает страницу объекта из трех запросов, строго по очереди:
// категория для detailIntro2 известна только после detailCommon2.
func (uc *GetTourDetailUseCase) Execute(ctx context.Context, contentID, contentTypeID string) (*domain.TourDetail, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, fmt.Errorf("%w: content id is required", domain.ErrInvalidInput)
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetTourDetail",
		"content_id": contentID,
	})
	ucLogger.Info("Use case started", nil)

	common, err := uc.api.GetCommon(ctx, contentID)
	if err != nil {
		ucLogger.Error("Failed to fetch common record", err, nil)
		return nil, fmt.Errorf("failed to fetch common record: %w", err)
	}

	typeID := common.ContentTypeID
	if typeID == "" {
		typeID = strings.TrimSpace(contentTypeID)
	}

	// Ошибки intro и изображений не фатальны: страница показывается без этих данных.
	var intro *domain.IntroRecord
	if typeID != "" {
		intro, err = uc.api.GetIntro(ctx, contentID, typeID)
		if err != nil {
			ucLogger.Warn("Intro record unavailable, continuing without it", port.Fields{
				"content_type_id": typeID,
				"error":           err.Error(),
			})
			intro = nil
		}
	}

	images, err := uc.api.GetImages(ctx, contentID)
	if err != nil {
		ucLogger.Warn("Images unavailable, continuing without them", port.Fields{"error": err.Error()})
		images = nil
	}

	detail := &domain.TourDetail{
		Common:         *common,
		Contact:        contact.Reconcile(*common, intro, typeID),
		Location:       geo.PointOf(common.MapX, common.MapY),
		Summary:        contact.Summarize(intro, typeID),
		IntroAvailable: intro != nil,
		Images:         images,
	}
	if intro != nil {
		detail.Intro = intro.Fields
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"content_type_id": typeID,
		"has_intro":       detail.IntroAvailable,
		"images":          len(images),
		"has_location":    detail.Location != nil,
	})
	return detail, nil
}
