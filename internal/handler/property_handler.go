package handler

import (
	"net/http"
	"time"

	"property-service/internal/model"
	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// refreshOccupiedGauge recounts occupied units after a status change.
func refreshOccupiedGauge() {
	state, err := records().Load()
	if err != nil {
		return
	}
	occupied := 0
	for _, p := range state.Properties {
		if p.Occupied() {
			occupied++
		}
	}
	prometheus.OccupiedPropertiesGauge.Set(float64(occupied))
}

// ListProperties returns the properties visible to the current user.
func ListProperties(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	defer prometheus.TrackStoreOperation("load")(time.Now())
	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve properties"})
	}

	visible := scope.Properties(user, state)
	log.Info("Properties retrieved", zap.Int("count", len(visible)))
	return c.JSON(http.StatusOK, visible)
}

// GetProperty returns one property if it is visible to the current user.
func GetProperty(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve property"})
	}

	for _, p := range scope.Properties(user, state) {
		if p.ID == id {
			return c.JSON(http.StatusOK, p)
		}
	}

	log.Warn("Property not visible", zap.String("property_id", id))
	return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
}

// CreateProperty adds a new unit in DRAFT.
func CreateProperty(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	var req struct {
		workflow.PropertyInput
		AgentID string `json:"agent_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if req.Name == "" || req.Location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location are required"})
	}

	p, err := workflow.CreateProperty(records(), user, req.AgentID, req.PropertyInput)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Property created",
		zap.String("property_id", p.ID),
		zap.String("name", p.Name))
	return c.JSON(http.StatusCreated, p)
}

// UpdateProperty replaces a property's mutable fields.
func UpdateProperty(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req workflow.PropertyInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("property_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	p, err := workflow.UpdateProperty(records(), user, id, req)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Property updated", zap.String("property_id", p.ID))
	return c.JSON(http.StatusOK, p)
}

// SetPropertyStatus lists, unlists or archives a property.
func SetPropertyStatus(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		Status model.PropertyStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("property_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	p, err := workflow.SetPropertyStatus(records(), user, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	refreshOccupiedGauge()
	log.Info("Property status changed",
		zap.String("property_id", p.ID),
		zap.String("status", string(p.Status)))
	return c.JSON(http.StatusOK, p)
}

// AssignTenant moves an approved applicant into the property.
func AssignTenant(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		TenantID string `json:"tenant_id"`
	}
	if err := c.Bind(&req); err != nil || req.TenantID == "" {
		log.Error("Invalid assignment request", zap.String("property_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required"})
	}

	agreement, err := workflow.AssignTenant(records(), user, id, req.TenantID)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.AssignmentCounter.Inc()
	refreshOccupiedGauge()
	log.Info("Tenant assigned",
		zap.String("property_id", id),
		zap.String("tenant_id", req.TenantID),
		zap.String("agreement_id", agreement.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Tenant assigned successfully",
		"agreement": agreement,
	})
}
