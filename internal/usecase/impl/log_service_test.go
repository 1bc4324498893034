package impl

import (
	"context"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type logServiceFixtures struct {
	storeFixtures
	service usecase.LogUsecase
}

func createTestLogService(t *testing.T) logServiceFixtures {
	f := newStoreFixtures(t)
	f.expectCollection(entity.LogCollection)

	return logServiceFixtures{
		storeFixtures: f,
		service:       NewLogService(f.params),
	}
}

func validLogInput(userID string) *entity.LogInput {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	return &entity.LogInput{
		UserID:         userID,
		ActivityID:     "lesson-1",
		Type:           "quiz",
		Value:          ptr("0.5"),
		StartTime:      start,
		CompletionTime: start.Add(5 * time.Minute),
	}
}

func TestLogService_CreateLog(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	id := entity.NewID()
	input := validLogInput("1")

	fx.coll.EXPECT().InsertOne(ctx, entity.NewLog(input)).Return(id, nil)
	fx.coll.EXPECT().
		FindOne(ctx, byID(id), mock.AnythingOfType("*entity.Log")).
		Run(func(_ context.Context, _ repository.Filter, out interface{}) {
			*out.(*entity.Log) = entity.Log{ID: id, LogInput: *input}
		}).
		Return(nil)

	log, err := fx.service.CreateLog(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, id, log.ID)
	assert.Equal(t, "0.5", *log.Value)
}

func TestLogService_CreateLog_ReadBackEmpty(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	id := entity.NewID()
	fx.coll.EXPECT().InsertOne(ctx, mock.Anything).Return(id, nil)
	fx.coll.EXPECT().FindOne(ctx, byID(id), mock.Anything).Return(repository.ErrNoDocument)

	_, err := fx.service.CreateLog(ctx, validLogInput("1"))
	assert.True(t, errors.Is(err, domainerrors.ErrLogCreationFailed))
}

func TestLogService_NotFoundErrors(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	id := entity.NewID()
	fx.coll.EXPECT().FindOne(ctx, byID(id), mock.Anything).Return(repository.ErrNoDocument)
	fx.coll.EXPECT().ReplaceOne(ctx, byID(id), mock.Anything).Return(int64(0), nil)
	fx.coll.EXPECT().DeleteOne(ctx, byID(id)).Return(int64(0), nil)

	_, err := fx.service.GetLog(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrLogNotFound))

	err = fx.service.UpdateLog(ctx, id, validLogInput("1"))
	assert.True(t, errors.Is(err, domainerrors.ErrLogNotUpdated))

	err = fx.service.DeleteLog(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrLogNotDeleted))
}

func TestLogService_ListLogsByUser(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	first := entity.Log{ID: entity.NewID(), LogInput: *validLogInput("a")}
	second := entity.Log{ID: entity.NewID(), LogInput: *validLogInput("a")}

	fx.coll.EXPECT().
		Find(ctx, repository.Filter{"user_id": "a"}, mock.AnythingOfType("*[]*entity.Log")).
		Run(func(_ context.Context, _ repository.Filter, out interface{}) {
			*out.(*[]*entity.Log) = []*entity.Log{&first, &second}
		}).
		Return(nil)
	fx.coll.EXPECT().Find(ctx, repository.Filter{"user_id": "nobody"}, mock.Anything).Return(nil)

	logs, err := fx.service.ListLogsByUser(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []*entity.Log{&first, &second}, logs)

	logs, err = fx.service.ListLogsByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestLogService_ListLogsByUser_StoreError(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to query logs")
	fx.coll.EXPECT().Find(ctx, mock.Anything, mock.Anything).Return(dbErr)

	_, err := fx.service.ListLogsByUser(ctx, "a")
	assert.ErrorIs(t, err, dbErr)
}
