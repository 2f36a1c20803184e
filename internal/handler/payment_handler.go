package handler

import (
	"net/http"
	"time"

	"property-service/internal/scope"
	"property-service/internal/workflow"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListPayments returns the payments visible to the current user.
func ListPayments(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	state, err := records().Load()
	if err != nil {
		log.Error("Failed to load state", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve payments"})
	}

	visible := scope.Payments(user, state)
	log.Info("Payments retrieved", zap.Int("count", len(visible)))
	return c.JSON(http.StatusOK, visible)
}

// SchedulePayment records a pending rent due for a tenant.
func SchedulePayment(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)

	var req struct {
		TenantID string    `json:"tenant_id"`
		Amount   float64   `json:"amount"`
		Due      time.Time `json:"due"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.TenantID == "" || req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id and a positive amount are required"})
	}
	if req.Due.IsZero() {
		req.Due = time.Now().UTC()
	}

	payment, err := workflow.SchedulePayment(records(), user, req.TenantID, req.Amount, req.Due)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Payment scheduled",
		zap.String("payment_id", payment.ID),
		zap.Float64("amount", payment.Amount))
	return c.JSON(http.StatusCreated, payment)
}

// SettlePayment moves one of the current tenant's payments to paid.
func SettlePayment(c echo.Context) error {
	log := logger.FromContext(c)
	user := currentUser(c)
	id := c.Param("id")

	payment, err := workflow.SettlePayment(records(), user, id)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.PaymentSettledCounter.Inc()
	log.Info("Payment settled",
		zap.String("payment_id", payment.ID),
		zap.Float64("amount", payment.Amount))
	return c.JSON(http.StatusOK, payment)
}
