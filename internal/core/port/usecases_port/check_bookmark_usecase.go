package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type CheckBookmarkUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, contentID string) (bool, error)
}
