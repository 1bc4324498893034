package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// LogUsecase defines the operations on activity logs.
type LogUsecase interface {
	CreateLog(ctx context.Context, input *entity.LogInput) (*entity.Log, error)
	GetLog(ctx context.Context, id entity.ID) (*entity.Log, error)
	UpdateLog(ctx context.Context, id entity.ID, input *entity.LogInput) error
	DeleteLog(ctx context.Context, id entity.ID) error
	ListLogsByUser(ctx context.Context, userID string) ([]*entity.Log, error)
}
