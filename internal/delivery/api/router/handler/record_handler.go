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

// RecordHandler serves the plain create/read/replace/delete routes of one
// collection.
type RecordHandler[In any, Out any] struct {
	uc     usecase.RecordUsecase[In, Out]
	schema *schema.Schema
	logger *slog.Logger
}

type (
	ActivityHandler   = RecordHandler[entity.ActivityInput, entity.Activity]
	LearnerHandler    = RecordHandler[entity.LearnerInput, entity.Learner]
	EngagementHandler = RecordHandler[entity.EngagementInput, entity.Engagement]
)

// RecordHandlerParams holds dependencies for the record handlers, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	ActivityUC   usecase.ActivityUsecase
	LearnerUC    usecase.LearnerUsecase
	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

func NewActivityHandler(params RecordHandlerParams) *ActivityHandler {
	return &ActivityHandler{uc: params.ActivityUC, schema: schema.Activity, logger: params.Logger}
}

func NewLearnerHandler(params RecordHandlerParams) *LearnerHandler {
	return &LearnerHandler{uc: params.LearnerUC, schema: schema.Learner, logger: params.Logger}
}

func NewEngagementHandler(params RecordHandlerParams) *EngagementHandler {
	return &EngagementHandler{uc: params.EngagementUC, schema: schema.Engagement, logger: params.Logger}
}

// Register mounts the routes under g.
func (h *RecordHandler[In, Out]) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *RecordHandler[In, Out]) Create(c echo.Context) error {
	var input In
	if err := bindPayload(c, h.schema, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, h.schema, record)
}

func (h *RecordHandler[In, Out]) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return render(c, h.schema, record)
}

func (h *RecordHandler[In, Out]) Update(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrNotUpdated)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input In
	if err := bindPayload(c, h.schema, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Update(c.Request().Context(), id, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

func (h *RecordHandler[In, Out]) Delete(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
