package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/wojg58/Thursday/internal/contextkeys"
	"github.com/wojg58/Thursday/internal/core/domain"
	"github.com/wojg58/Thursday/internal/core/port"
)

type ListAreaCodesUseCase struct {
	api port.TourAPIPort
}

func NewListAreaCodesUseCase(api port.TourAPIPort) *ListAreaCodesUseCase {
	return &ListAreaCodesUseCase{api: api}
}

func (uc *ListAreaCodesUseCase) Execute(ctx context.Context, parentCode string) ([]domain.AreaCode, error) {
	parentCode = strings.TrimSpace(parentCode)
	if parentCode == domain.AllAreas {
		parentCode = ""
	}
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ListAreaCodes",
		"parent_code": parentCode,
	})

	codes, err := uc.api.AreaCodes(ctx, parentCode)
	if err != nil {
		ucLogger.Error("Failed to fetch area codes", err, nil)
		return nil, fmt.Errorf("failed to fetch area codes: %w", err)
	}
	ucLogger.Debug("Area codes fetched", port.Fields{"count": len(codes)})
	return codes, nil
}
