package handler

import (
	"net/http"

	"property-service/internal/assess"
	"property-service/internal/model"
	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListTickets returns the maintenance tickets visible to the current user.
func ListTickets(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve tickets"})
	}

	visible := scope.Tickets(user, state)
	log.Info("Tickets retrieved", zap.Int("count", len(visible)))
	return c.JSON(http.StatusOK, visible)
}

// CreateTicket opens a maintenance ticket for the current tenant. The
// assessment service supplies priority and triage notes; on any failure the
// ticket is still created with the MEDIUM default and the fixed fallback
// note.
func CreateTicket(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	var req workflow.TicketInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Issue == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "issue description is required"})
	}

	// Reject ineligible callers before paying for the assessment call.
	if user.Role != model.RoleTenant {
		return respondError(c, workflow.ErrForbidden)
	}
	if user.AssignedPropertyID == "" {
		return respondError(c, workflow.ErrPropertyNotFound)
	}

	triage, err := assessor.ClassifyMaintenance(c.Request().Context(), req.Issue)
	if err != nil {
		log.Warn("Assessment unavailable, using fallback triage", zap.Error(err))
		prometheus.RecordAssessment("classify", "fallback")
		prometheus.AssessmentFallbackCounter.Inc()
		triage = assess.DefaultAssessment()
	} else {
		prometheus.RecordAssessment("classify", "ok")
	}

	ticket, err := workflow.CreateTicket(records(), user, req, triage.Priority, triage.Assessment)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.TicketCounter.WithLabelValues("created").Inc()
	log.Info("Maintenance ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("priority", string(ticket.Priority)))
	return c.JSON(http.StatusCreated, ticket)
}

// TransitionTicket sets a ticket's status.
func TransitionTicket(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		Status model.TicketStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("ticket_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	ticket, err := workflow.TransitionTicket(records(), user, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.TicketCounter.WithLabelValues(string(ticket.Status)).Inc()
	log.Info("Ticket status changed",
		zap.String("ticket_id", ticket.ID),
		zap.String("status", string(ticket.Status)))
	return c.JSON(http.StatusOK, ticket)
}
