package usecases_port

import (
	"context"

	"github.com/wojg58/Thursday/internal/core/domain"
)

type ListToursUseCasePort interface {
	// Одна страница выдачи без накопления: фильтр и сортировка уже применены.
	Execute(ctx context.Context, descriptor domain.FeedDescriptor, page int) (*domain.ListResult, error)
}
