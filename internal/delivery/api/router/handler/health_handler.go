package handler

import (
	"tracker/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. It does not touch the store.
func HealthCheck(c echo.Context) error {
	return response.Success(c, map[string]string{"status": "ok"})
}
