package handler

import (
	"errors"
	"net/http"

	"property-service/internal/assess"
	"property-service/internal/auth"
	"property-service/internal/middleware"
	"property-service/internal/model"
	"property-service/internal/store"
	"property-service/internal/workflow"
	"property-service/pkg/config"
	"property-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	authenticator auth.Authenticator
	assessor      assess.Assessor
)

// Init wires the authenticator and assessment client from configuration
func Init(cfg *config.Config) {
	authenticator = auth.FromConfig(cfg)
	assessor = assess.NewClient(cfg, logger.GetLogger())
}

// SetDeps overrides the authenticator and assessment client (used by tests)
func SetDeps(a auth.Authenticator, as assess.Assessor) {
	if a != nil {
		authenticator = a
	}
	if as != nil {
		assessor = as
	}
}

func records() store.Store {
	return store.Get()
}

// currentUser returns the user resolved by the session middleware.
func currentUser(c echo.Context) *model.User {
	return middleware.CurrentUser(c)
}

// respondError maps domain errors to HTTP statuses with a user-facing body.
func respondError(c echo.Context, err error) error {
	log := logger.FromContext(c)

	var status int
	switch {
	case errors.Is(err, workflow.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, workflow.ErrUserNotFound),
		errors.Is(err, workflow.ErrPropertyNotFound),
		errors.Is(err, workflow.ErrApplicationNotFound),
		errors.Is(err, workflow.ErrAgreementNotFound),
		errors.Is(err, workflow.ErrPaymentNotFound),
		errors.Is(err, workflow.ErrTicketNotFound),
		errors.Is(err, workflow.ErrNotificationNotFound):
		status = http.StatusNotFound
	case errors.Is(err, workflow.ErrPropertyOccupied),
		errors.Is(err, workflow.ErrPropertyArchived),
		errors.Is(err, workflow.ErrTenantAlreadyAssigned),
		errors.Is(err, workflow.ErrNoApprovedApplication),
		errors.Is(err, workflow.ErrApplicationDecided),
		errors.Is(err, workflow.ErrApplicationNotEditable),
		errors.Is(err, workflow.ErrPaymentAlreadySettled):
		status = http.StatusConflict
	case errors.Is(err, workflow.ErrInvalidStatus):
		status = http.StatusBadRequest
	default:
		log.Error("Unhandled workflow error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	log.Warn("Workflow transition rejected", zap.Error(err))
	return c.JSON(status, echo.Map{"error": err.Error()})
}
