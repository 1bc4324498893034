package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/errors"
	"tracker/internal/usecase"
)

const conversationsField = "conversations"

var userErrors = RecordErrors{
	NotFound:       domainerrors.ErrUserNotFound,
	NotUpdated:     domainerrors.ErrUserNotUpdated,
	NotDeleted:     domainerrors.ErrUserNotFound,
	CreationFailed: domainerrors.ErrUserCreationFailed,
}

// userService implements the UserUsecase interface.
type userService struct {
	records *recordService[entity.UserInput, entity.User]
}

// NewUserService is the constructor for userService.
func NewUserService(params RecordServiceParams) usecase.UserUsecase {
	return &userService{
		records: newRecordService(params, entity.UserCollection, entity.NewUser, userErrors),
	}
}

func (s *userService) CreateUser(ctx context.Context, input *entity.UserInput) (*entity.User, error) {
	return s.records.Create(ctx, input)
}

func (s *userService) GetUser(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	return s.records.get(ctx, identity)
}

func (s *userService) GetUserByTelegramID(ctx context.Context, tgID int64) (*entity.User, error) {
	return s.records.get(ctx, entity.ByTelegramID(tgID))
}

func (s *userService) UpdateUser(ctx context.Context, identity entity.Identity, input *entity.UserInput) error {
	return s.records.update(ctx, identity, input)
}

func (s *userService) DeleteUser(ctx context.Context, identity entity.Identity) error {
	return s.records.delete(ctx, identity)
}

func (s *userService) DeleteUserByTelegramID(ctx context.Context, tgID int64) error {
	return s.records.delete(ctx, entity.ByTelegramID(tgID))
}

func (s *userService) AddConversation(ctx context.Context, userID entity.ID, conversation *entity.Conversation) error {
	if err := s.records.validator.Struct(conversation); err != nil {
		return err
	}

	matched, err := s.records.coll().UpdateOne(ctx, repository.ByIdentity(entity.ByID(userID)), repository.Append{
		Field: conversationsField,
		Value: entity.NewConversation(conversation),
	})
	if err != nil {
		return errors.Wrap(err, "append conversation")
	}
	if matched == 0 {
		return domainerrors.ErrConversationNotAdded
	}

	return nil
}

func (s *userService) AddMessage(ctx context.Context, userID entity.ID, index int, msg *entity.Message) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.records.logger)

	if err := s.records.validator.Struct(msg); err != nil {
		return err
	}

	user, err := s.loadUser(ctx, userID, domainerrors.ErrConversationNotFound)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(user.Conversations) {
		return domainerrors.ErrConversationNotFound
	}

	// A concurrent writer may change the user between the check above and
	// the append below.
	matched, err := s.records.coll().UpdateOne(ctx, repository.ByIdentity(entity.ByID(userID)), repository.Append{
		Field: messagesField(index),
		Value: msg,
	})
	if err != nil {
		return errors.Wrap(err, "append message")
	}
	if matched == 0 {
		logger.Warn("User vanished before message append", slog.String("userId", userID.Hex()))

		return domainerrors.ErrConversationNotFound
	}

	return nil
}

func (s *userService) GetConversation(ctx context.Context, userID entity.ID, index int) (*entity.Conversation, error) {
	user, err := s.loadUser(ctx, userID, domainerrors.ErrConversationNotFound)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Conversations) {
		return nil, domainerrors.ErrConversationNotFound
	}

	return entity.NewConversation(&user.Conversations[index]), nil
}

func (s *userService) ListMessages(ctx context.Context, userID entity.ID) ([]entity.Message, error) {
	user, err := s.loadUser(ctx, userID, domainerrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	messages := make([]entity.Message, 0)
	for _, conv := range user.Conversations {
		messages = append(messages, conv.Messages...)
	}

	return messages, nil
}

// loadUser reads the user, reporting absence as notFound.
func (s *userService) loadUser(ctx context.Context, userID entity.ID, notFound error) (*entity.User, error) {
	var user entity.User
	if err := s.records.coll().FindOne(ctx, repository.ByIdentity(entity.ByID(userID)), &user); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, notFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return &user, nil
}

func messagesField(index int) string {
	return conversationsField + "." + strconv.Itoa(index) + ".messages"
}
