package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// RecordUsecase is the plain create/read/replace/delete contract shared by
// the catalogue style collections. In is the client shape, Out the stored one.
type RecordUsecase[In any, Out any] interface {
	Create(ctx context.Context, input *In) (*Out, error)
	Get(ctx context.Context, id entity.ID) (*Out, error)
	Update(ctx context.Context, id entity.ID, input *In) error
	Delete(ctx context.Context, id entity.ID) error
}

type (
	ActivityUsecase   = RecordUsecase[entity.ActivityInput, entity.Activity]
	LearnerUsecase    = RecordUsecase[entity.LearnerInput, entity.Learner]
	EngagementUsecase = RecordUsecase[entity.EngagementInput, entity.Engagement]
)
