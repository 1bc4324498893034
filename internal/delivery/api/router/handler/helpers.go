package handler

import (
	"io"
	"strconv"

	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/schema"
	"tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindPayload reads the JSON body and decodes it through s into out.
func bindPayload(c echo.Context, s *schema.Schema, out any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// BodyLimit reports oversized bodies through the reader.
		return err
	}

	payload, err := schema.Parse(body)
	if err != nil {
		return err
	}

	return schema.Decode(s, payload, out)
}

// render writes v in wire form.
func render(c echo.Context, s *schema.Schema, v any) error {
	out, err := schema.Encode(s, v)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, out)
}

// pathID parses a hex identity path parameter. A malformed value cannot
// address any document, so it is reported as notFound.
func pathID(c echo.Context, name string, notFound error) (entity.ID, error) {
	id, err := entity.ParseID(c.Param(name))
	if err != nil {
		return entity.NilID, notFound
	}

	return id, nil
}

// pathTelegramID parses a positive decimal Telegram id path parameter.
func pathTelegramID(c echo.Context, name string, notFound error) (int64, error) {
	tgID, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || tgID <= 0 {
		return 0, notFound
	}

	return tgID, nil
}

func pathIndex(c echo.Context, name string) (int, error) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  name,
			Reason: "must be an integer",
		})
	}

	return idx, nil
}
