package handler

import (
	"net/http"

	"property-service/internal/model"
	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListApplications returns the dossiers visible to the current user.
func ListApplications(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve applications"})
	}

	visible := scope.Applications(user, state)
	log.Info("Applications retrieved", zap.Int("count", len(visible)))
	return c.JSON(http.StatusOK, visible)
}

// SubmitApplication files the current tenant's dossier.
func SubmitApplication(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	var req struct {
		AgentID string                 `json:"agent_id"`
		Details model.ApplicantDetails `json:"details"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.AgentID == "" || req.Details.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "agent_id and applicant details are required"})
	}

	app, err := workflow.SubmitApplication(records(), user, req.AgentID, req.Details, "")
	if err != nil {
		return respondError(c, err)
	}

	prometheus.ApplicationCounter.WithLabelValues("submitted").Inc()
	log.Info("Application submitted",
		zap.String("application_id", app.ID),
		zap.Int("risk_score", app.RiskScore))
	return c.JSON(http.StatusCreated, app)
}

// EditApplication replaces a pending dossier's details.
func EditApplication(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		Details model.ApplicantDetails `json:"details"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("application_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	app, err := workflow.EditApplication(records(), user, id, req.Details)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.ApplicationCounter.WithLabelValues("edited").Inc()
	log.Info("Application edited", zap.String("application_id", app.ID))
	return c.JSON(http.StatusOK, app)
}

// DecideApplication applies an agent/admin decision to a dossier.
func DecideApplication(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		Status model.ApplicationStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("application_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	app, err := workflow.DecideApplication(records(), user, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.ApplicationCounter.WithLabelValues(string(app.Status)).Inc()
	log.Info("Application decided",
		zap.String("application_id", app.ID),
		zap.String("status", string(app.Status)))
	return c.JSON(http.StatusOK, app)
}
