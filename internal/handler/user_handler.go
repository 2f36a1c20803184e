package handler

import (
	"net/http"

	"property-service/internal/model"
	"property-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListUsers returns accounts for staff, optionally filtered by role.
// Agents use it to pick an approved applicant during assignment.
func ListUsers(c echo.Context) error {
	log := logger.FromContext(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve users"})
	}

	role := model.Role(c.QueryParam("role"))
	if role != "" && !role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role filter"})
	}

	out := make([]model.User, 0)
	for _, u := range state.Users {
		if role == "" || u.Role == role {
			out = append(out, u.Sanitized())
		}
	}
	return c.JSON(http.StatusOK, out)
}
