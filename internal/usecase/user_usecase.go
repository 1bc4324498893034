// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// UserUsecase defines the user operations, including the conversations and
// messages embedded in a user. Every write validates its input before the
// store is touched.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *entity.UserInput) (*entity.User, error)
	GetUser(ctx context.Context, identity entity.Identity) (*entity.User, error)
	GetUserByTelegramID(ctx context.Context, tgID int64) (*entity.User, error)
	UpdateUser(ctx context.Context, identity entity.Identity, input *entity.UserInput) error
	DeleteUser(ctx context.Context, identity entity.Identity) error
	DeleteUserByTelegramID(ctx context.Context, tgID int64) error

	// AddConversation appends a conversation to the user.
	AddConversation(ctx context.Context, userID entity.ID, conversation *entity.Conversation) error
	// AddMessage appends msg to the conversation at index. The range check
	// and the append are separate store calls.
	AddMessage(ctx context.Context, userID entity.ID, index int, msg *entity.Message) error
	GetConversation(ctx context.Context, userID entity.ID, index int) (*entity.Conversation, error)
	// ListMessages returns every message of the user, conversation by conversation.
	ListMessages(ctx context.Context, userID entity.ID) ([]entity.Message, error)
}
