package memory

import (
	"context"
	"sync"
	"testing"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &storetest.Suite{NewStore: NewStore})
}

func TestCollection_AppendOutOfRangeIndex(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Collection(entity.UserCollection)

	id, err := users.InsertOne(ctx, entity.NewUser(&entity.UserInput{Name: "x"}))
	require.NoError(t, err)

	_, err = users.UpdateOne(ctx, repository.ByIdentity(entity.ByID(id)), repository.Append{
		Field: "conversations.3.messages",
		Value: entity.Message{Sender: entity.SenderUser, Text: "hi"},
	})
	assert.Error(t, err)
}

func TestCollection_AppendCreatesMissingArray(t *testing.T) {
	ctx := context.Background()
	coll := NewStore().Collection("things")

	id, err := coll.InsertOne(ctx, map[string]any{"name": "x"})
	require.NoError(t, err)

	matched, err := coll.UpdateOne(ctx, repository.ByIdentity(entity.ByID(id)), repository.Append{Field: "tags", Value: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var got struct {
		Tags []string `bson:"tags"`
	}
	require.NoError(t, coll.FindOne(ctx, repository.ByIdentity(entity.ByID(id)), &got))
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestCollection_NumericFiltersMatchAcrossTypes(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Collection(entity.UserCollection)

	_, err := users.InsertOne(ctx, bson.D{{Key: "name", Value: "x"}, {Key: "tg_id", Value: int32(42)}})
	require.NoError(t, err)

	var got struct {
		Name string `bson:"name"`
	}
	require.NoError(t, users.FindOne(ctx, repository.ByIdentity(entity.ByTelegramID(42)), &got))
	assert.Equal(t, "x", got.Name)

	require.NoError(t, users.FindOne(ctx, repository.Filter{"tg_id": 42.0}, &got))

	err = users.FindOne(ctx, repository.Filter{"tg_id": 42.5}, &got)
	assert.ErrorIs(t, err, repository.ErrNoDocument)

	err = users.FindOne(ctx, repository.Filter{"tg_id": "42"}, &got)
	assert.ErrorIs(t, err, repository.ErrNoDocument)
}

func TestCollection_DuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Collection(entity.UserCollection)

	user := entity.NewUser(&entity.UserInput{Name: "x"})
	user.ID = entity.NewID()

	_, err := users.InsertOne(ctx, user)
	require.NoError(t, err)

	_, err = users.InsertOne(ctx, user)
	assert.ErrorIs(t, err, errDuplicateID)
}

func TestCollection_FindRequiresSlicePointer(t *testing.T) {
	var notASlice entity.User
	err := NewStore().Collection(entity.UserCollection).Find(context.Background(), nil, &notASlice)
	assert.Error(t, err)
}

func TestCollection_ConcurrentAppendsAreNotLost(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Collection(entity.UserCollection)

	id, err := users.InsertOne(ctx, entity.NewUser(&entity.UserInput{
		Name:          "x",
		Conversations: []entity.Conversation{{}},
	}))
	require.NoError(t, err)
	filter := repository.ByIdentity(entity.ByID(id))

	const writers = 25
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.UpdateOne(ctx, filter, repository.Append{
				Field: "conversations.0.messages",
				Value: entity.Message{Sender: entity.SenderBot, Text: "ping"},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var got entity.User
	require.NoError(t, users.FindOne(ctx, filter, &got))
	require.Len(t, got.Conversations, 1)
	assert.Len(t, got.Conversations[0].Messages, writers)
}

func TestCollection_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Collection(entity.UserCollection).InsertOne(ctx, entity.NewUser(&entity.UserInput{Name: "x"}))
	assert.ErrorIs(t, err, context.Canceled)
}
