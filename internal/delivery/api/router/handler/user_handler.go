package handler

import (
	"log/slog"

	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/schema"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves users and the conversations embedded in them.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input entity.UserInput
	if err := bindPayload(c, schema.User, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.User, user)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), entity.ByID(id))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.User, user)
}

// GetUserByTelegramID handles GET /users/tg/:tg_id
func (h *UserHandler) GetUserByTelegramID(c echo.Context) error {
	tgID, err := pathTelegramID(c, "tg_id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUserByTelegramID(c.Request().Context(), tgID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.User, user)
}

// UpdateUser handles PUT /users/:id. The body replaces the whole document.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotUpdated)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.UserInput
	if err := bindPayload(c, schema.User, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.UpdateUser(c.Request().Context(), entity.ByID(id), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), entity.ByID(id)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// DeleteUserByTelegramID handles DELETE /users/tg/:tg_id
func (h *UserHandler) DeleteUserByTelegramID(c echo.Context) error {
	tgID, err := pathTelegramID(c, "tg_id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUserByTelegramID(c.Request().Context(), tgID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// AddConversation handles POST /users/:id/conversations
func (h *UserHandler) AddConversation(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrConversationNotAdded)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var conversation entity.Conversation
	if err := bindPayload(c, schema.Conversation, &conversation); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.AddConversation(c.Request().Context(), id, &conversation); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// GetConversation handles GET /users/:id/conversations/:idx
func (h *UserHandler) GetConversation(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrConversationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	idx, err := pathIndex(c, "idx")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conversation, err := h.userUC.GetConversation(c.Request().Context(), id, idx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.Conversation, conversation)
}

// AddMessage handles POST /users/:id/conversations/:idx/messages
func (h *UserHandler) AddMessage(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrConversationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	idx, err := pathIndex(c, "idx")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var msg entity.Message
	if err := bindPayload(c, schema.Message, &msg); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.AddMessage(c.Request().Context(), id, idx, &msg); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// ListMessages handles GET /users/:id/messages
func (h *UserHandler) ListMessages(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.userUC.ListMessages(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.Message, messages)
}
