package impl

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

const logUserIDField = "user_id"

var logErrors = RecordErrors{
	NotFound:       domainerrors.ErrLogNotFound,
	NotUpdated:     domainerrors.ErrLogNotUpdated,
	NotDeleted:     domainerrors.ErrLogNotDeleted,
	CreationFailed: domainerrors.ErrLogCreationFailed,
}

// logService implements the LogUsecase interface.
type logService struct {
	records *recordService[entity.LogInput, entity.Log]
}

// NewLogService is the constructor for logService.
func NewLogService(params RecordServiceParams) usecase.LogUsecase {
	return &logService{
		records: newRecordService(params, entity.LogCollection, entity.NewLog, logErrors),
	}
}

func (s *logService) CreateLog(ctx context.Context, input *entity.LogInput) (*entity.Log, error) {
	return s.records.Create(ctx, input)
}

func (s *logService) GetLog(ctx context.Context, id entity.ID) (*entity.Log, error) {
	return s.records.Get(ctx, id)
}

func (s *logService) UpdateLog(ctx context.Context, id entity.ID, input *entity.LogInput) error {
	return s.records.Update(ctx, id, input)
}

func (s *logService) DeleteLog(ctx context.Context, id entity.ID) error {
	return s.records.Delete(ctx, id)
}

// ListLogsByUser returns the logs of one user in storage order; none is an empty list.
func (s *logService) ListLogsByUser(ctx context.Context, userID string) ([]*entity.Log, error) {
	logs := make([]*entity.Log, 0)
	if err := s.records.coll().Find(ctx, repository.Filter{logUserIDField: userID}, &logs); err != nil {
		return nil, errors.Wrap(err, "find logs by user")
	}
	if logs == nil {
		logs = make([]*entity.Log, 0)
	}

	return logs, nil
}
