package workflow

import (
	"testing"
	"time"

	"property-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlePayment(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t1")

	before := time.Now().UTC()
	p, err := SettlePayment(st, tenant, "pay-pending")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPaid, p.Status)
	assert.Equal(t, float64(1200000), p.Amount)
	assert.False(t, p.Date.Before(before), "settlement date should be stamped now")
}

func TestSettlePaymentAlreadyPaid(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t1")

	_, err := SettlePayment(st, tenant, "pay-paid")
	assert.ErrorIs(t, err, ErrPaymentAlreadySettled)
}

func TestSettlePaymentOtherTenantForbidden(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t2")

	_, err := SettlePayment(st, tenant, "pay-pending")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSchedulePayment(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")
	due := time.Now().UTC().AddDate(0, 1, 0)

	p, err := SchedulePayment(st, agent, "u-t1", 1200000, due)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, p.Status)
	assert.Equal(t, "p1", p.PropertyID)
	assert.True(t, p.Date.Equal(due))
}

func TestSchedulePaymentUnassignedTenant(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")

	_, err := SchedulePayment(st, agent, "u-t2", 900000, time.Now())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
