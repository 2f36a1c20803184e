package handler

import (
	"net/http"

	"property-service/internal/assess"
	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListAgreements returns the lease agreements visible to the current user.
func ListAgreements(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve agreements"})
	}

	visible := scope.Agreements(user, state)
	log.Info("Agreements retrieved", zap.Int("count", len(visible)))
	return c.JSON(http.StatusOK, visible)
}

// AttachAgreementDocument records a signed lease document URL.
func AttachAgreementDocument(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	var req struct {
		DocumentURL string `json:"document_url"`
	}
	if err := c.Bind(&req); err != nil || req.DocumentURL == "" {
		log.Error("Invalid request data", zap.String("agreement_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "document_url is required"})
	}

	agreement, err := workflow.AttachAgreementDocument(records(), user, id, req.DocumentURL)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Agreement document attached", zap.String("agreement_id", agreement.ID))
	return c.JSON(http.StatusOK, agreement)
}

// SummarizeLease returns a plain-text summary of lease text via the
// assessment service. On failure it degrades to the fixed fallback string
// rather than surfacing a blocking error.
func SummarizeLease(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		LeaseText string `json:"lease_text"`
	}
	if err := c.Bind(&req); err != nil || req.LeaseText == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lease_text is required"})
	}

	summary, err := assessor.SummarizeLease(c.Request().Context(), req.LeaseText)
	if err != nil {
		log.Warn("Lease summarization unavailable, using fallback", zap.Error(err))
		prometheus.RecordAssessment("summarize", "fallback")
		prometheus.AssessmentFallbackCounter.Inc()
		return c.JSON(http.StatusOK, echo.Map{"summary": assess.FallbackSummary})
	}

	prometheus.RecordAssessment("summarize", "ok")
	return c.JSON(http.StatusOK, echo.Map{"summary": summary})
}
