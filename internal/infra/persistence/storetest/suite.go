// Package storetest holds the behaviour every repository.DocumentStore
// implementation must share. Implementations run it from their own tests.
package storetest

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"

	"github.com/stretchr/testify/suite"
)

// Suite runs the store contract against a fresh store per test.
type Suite struct {
	suite.Suite

	// NewStore returns an empty store.
	NewStore func() repository.DocumentStore

	store repository.DocumentStore
}

func (s *Suite) SetupTest() {
	s.store = s.NewStore()
}

func ptr[T any](v T) *T { return &v }

// at returns a millisecond precision UTC timestamp, the resolution stores keep.
func at(minute int) time.Time {
	return time.Date(2024, 5, 1, 10, minute, 0, 0, time.UTC)
}

func (s *Suite) users() repository.Collection {
	return s.store.Collection(entity.UserCollection)
}

func (s *Suite) insertUser(in entity.UserInput) entity.ID {
	id, err := s.users().InsertOne(context.Background(), entity.NewUser(&in))
	s.Require().NoError(err)
	s.Require().False(id.IsZero())

	return id
}

func (s *Suite) TestInsertGeneratesIdentity() {
	ctx := context.Background()
	id := s.insertUser(entity.UserInput{Name: "Test User", TelegramID: ptr(int64(42))})

	var got entity.User
	s.Require().NoError(s.users().FindOne(ctx, repository.ByIdentity(entity.ByID(id)), &got))

	s.Equal(id, got.ID)
	s.Equal("Test User", got.Name)
	s.Equal(int64(42), *got.TelegramID)
	s.Nil(got.Gender)
	s.Equal(0, got.LaunchCount)
	s.NotNil(got.Conversations)
	s.Empty(got.Conversations)
}

func (s *Suite) TestInsertKeepsSuppliedIdentity() {
	ctx := context.Background()
	want := entity.NewID()

	user := entity.NewUser(&entity.UserInput{Name: "x"})
	user.ID = want

	id, err := s.users().InsertOne(ctx, user)
	s.Require().NoError(err)
	s.Equal(want, id)
}

func (s *Suite) TestFindOneMissing() {
	var got entity.User
	err := s.users().FindOne(context.Background(), repository.ByIdentity(entity.ByID(entity.NewID())), &got)
	s.ErrorIs(err, repository.ErrNoDocument)
}

func (s *Suite) TestFindOneByTelegramID() {
	ctx := context.Background()
	s.insertUser(entity.UserInput{Name: "first", TelegramID: ptr(int64(7))})
	s.insertUser(entity.UserInput{Name: "second", TelegramID: ptr(int64(8))})

	var got entity.User
	s.Require().NoError(s.users().FindOne(ctx, repository.ByIdentity(entity.ByTelegramID(8)), &got))
	s.Equal("second", got.Name)
}

func (s *Suite) TestFindMany() {
	ctx := context.Background()
	logs := s.store.Collection(entity.LogCollection)

	for _, userID := range []string{"a", "b", "a"} {
		_, err := logs.InsertOne(ctx, entity.NewLog(&entity.LogInput{
			UserID:         userID,
			ActivityID:     "act",
			Type:           "quiz",
			StartTime:      at(0),
			CompletionTime: at(5),
		}))
		s.Require().NoError(err)
	}

	var got []*entity.Log
	s.Require().NoError(logs.Find(ctx, repository.Filter{"user_id": "a"}, &got))
	s.Len(got, 2)
	for _, l := range got {
		s.Equal("a", l.UserID)
		s.Equal(at(5), l.CompletionTime)
	}

	var none []*entity.Log
	s.Require().NoError(logs.Find(ctx, repository.Filter{"user_id": "zzz"}, &none))
	s.Empty(none)
}

func (s *Suite) TestReplaceOne() {
	ctx := context.Background()
	id := s.insertUser(entity.UserInput{Name: "before"})
	filter := repository.ByIdentity(entity.ByID(id))

	matched, err := s.users().ReplaceOne(ctx, filter, entity.NewUser(&entity.UserInput{Name: "after"}))
	s.Require().NoError(err)
	s.Equal(int64(1), matched)

	// Identical content still counts as matched.
	matched, err = s.users().ReplaceOne(ctx, filter, entity.NewUser(&entity.UserInput{Name: "after"}))
	s.Require().NoError(err)
	s.Equal(int64(1), matched)

	var got entity.User
	s.Require().NoError(s.users().FindOne(ctx, filter, &got))
	s.Equal(id, got.ID)
	s.Equal("after", got.Name)

	matched, err = s.users().ReplaceOne(ctx, repository.ByIdentity(entity.ByID(entity.NewID())), entity.NewUser(&entity.UserInput{Name: "x"}))
	s.Require().NoError(err)
	s.Zero(matched)
}

func (s *Suite) TestDeleteOne() {
	ctx := context.Background()
	id := s.insertUser(entity.UserInput{Name: "x"})
	filter := repository.ByIdentity(entity.ByID(id))

	deleted, err := s.users().DeleteOne(ctx, filter)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	deleted, err = s.users().DeleteOne(ctx, filter)
	s.Require().NoError(err)
	s.Zero(deleted)

	var got entity.User
	s.ErrorIs(s.users().FindOne(ctx, filter, &got), repository.ErrNoDocument)
}

func (s *Suite) TestAppendNested() {
	ctx := context.Background()
	id := s.insertUser(entity.UserInput{Name: "x"})
	filter := repository.ByIdentity(entity.ByID(id))

	conv := entity.NewConversation(&entity.Conversation{UserID: ptr(int64(42))})
	matched, err := s.users().UpdateOne(ctx, filter, repository.Append{Field: "conversations", Value: conv})
	s.Require().NoError(err)
	s.Equal(int64(1), matched)

	first := entity.Message{Sender: entity.SenderUser, Text: "hi", Time: at(1)}
	second := entity.Message{Sender: entity.SenderBot, Text: "hello", Time: at(2)}
	for _, msg := range []entity.Message{first, second} {
		matched, err = s.users().UpdateOne(ctx, filter, repository.Append{Field: "conversations.0.messages", Value: msg})
		s.Require().NoError(err)
		s.Equal(int64(1), matched)
	}

	var got entity.User
	s.Require().NoError(s.users().FindOne(ctx, filter, &got))
	s.Require().Len(got.Conversations, 1)
	s.Equal(int64(42), *got.Conversations[0].UserID)
	s.Equal([]entity.Message{first, second}, got.Conversations[0].Messages)

	matched, err = s.users().UpdateOne(ctx, repository.ByIdentity(entity.ByID(entity.NewID())), repository.Append{Field: "conversations", Value: conv})
	s.Require().NoError(err)
	s.Zero(matched)
}
