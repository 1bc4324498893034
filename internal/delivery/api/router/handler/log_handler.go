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

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// LogHandler serves activity logs.
type LogHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// CreateLog handles POST /logs
func (h *LogHandler) CreateLog(c echo.Context) error {
	var input entity.LogInput
	if err := bindPayload(c, schema.Log, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.logUC.CreateLog(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.Log, log)
}

// GetLog handles GET /logs/:id
func (h *LogHandler) GetLog(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrLogNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	log, err := h.logUC.GetLog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.Log, log)
}

// UpdateLog handles PUT /logs/:id
func (h *LogHandler) UpdateLog(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrLogNotUpdated)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.LogInput
	if err := bindPayload(c, schema.Log, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.logUC.UpdateLog(c.Request().Context(), id, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// DeleteLog handles DELETE /logs/:id
func (h *LogHandler) DeleteLog(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrLogNotDeleted)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.logUC.DeleteLog(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// ListLogsByUser handles GET /logs/user/:user_id. Unknown users get an empty list.
func (h *LogHandler) ListLogsByUser(c echo.Context) error {
	logs, err := h.logUC.ListLogsByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, schema.Log, logs)
}
