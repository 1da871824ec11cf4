package usecases_port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

type ListAreaCodesUseCasePort interface {
	// Пустой parentCode - список регионов, иначе районы региона.
	Execute(ctx context.Context, parentCode string) ([]domain.AreaCode, error)
}
