package tourapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wojg58/Thursday/internal/core/domain"
)

// areaCodeRows - справочник небольшой, берем его одной страницей.
const areaCodeRows = 100

func (a *TourAPIAdapter) GetCommon(ctx context.Context, contentID string) (*domain.CommonRecord, error) {
	params := url.Values{}
	params.Set("contentId", contentID)

	body, err := a.call(ctx, opDetailCommon, params)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeItems[commonDTO](body.Items)
	if err != nil {
		return nil, fmt.Errorf("tourapi %s: %w", opDetailCommon, err)
	}
	if len(dtos) == 0 {
		return nil, fmt.Errorf("content %s: %w", contentID, domain.ErrNotFound)
	}

	record := toCommonRecord(dtos[0])
	if record.ContentID == "" {
		record.ContentID = contentID
	}
	return record, nil
}

func (a *TourAPIAdapter) GetIntro(ctx context.Context, contentID, contentTypeID string) (*domain.IntroRecord, error) {
	params := url.Values{}
	params.Set("contentId", contentID)
	params.Set("contentTypeId", contentTypeID)

	body, err := a.call(ctx, opDetailIntro, params)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeItems[introDTO](body.Items)
	if err != nil {
		return nil, fmt.Errorf("tourapi %s: %w", opDetailIntro, err)
	}
	if len(dtos) == 0 {
		return nil, fmt.Errorf("intro for %s: %w", contentID, domain.ErrNotFound)
	}
	return toIntroRecord(contentID, contentTypeID, dtos[0]), nil
}

func (a *TourAPIAdapter) GetImages(ctx context.Context, contentID string) ([]domain.TourImage, error) {
	params := url.Values{}
	params.Set("contentId", contentID)
	params.Set("imageYN", "Y")

	body, err := a.call(ctx, opDetailImage, params)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeItems[imageDTO](body.Items)
	if err != nil {
		return nil, fmt.Errorf("tourapi %s: %w", opDetailImage, err)
	}

	images := make([]domain.TourImage, 0, len(dtos))
	for _, d := range dtos {
		if img := toTourImage(d); img.OriginURL != "" || img.SmallURL != "" {
			images = append(images, img)
		}
	}
	return images, nil
}

func (a *TourAPIAdapter) AreaCodes(ctx context.Context, parentCode string) ([]domain.AreaCode, error) {
	params := url.Values{}
	params.Set("numOfRows", itoa(areaCodeRows))
	params.Set("pageNo", "1")
	if parentCode != "" {
		params.Set("areaCode", parentCode)
	}

	body, err := a.call(ctx, opAreaCode, params)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeItems[areaCodeDTO](body.Items)
	if err != nil {
		return nil, fmt.Errorf("tourapi %s: %w", opAreaCode, err)
	}

	codes := make([]domain.AreaCode, 0, len(dtos))
	for _, d := range dtos {
		codes = append(codes, toAreaCode(d))
	}
	return codes, nil
}
