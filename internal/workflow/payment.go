package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"

	"github.com/google/uuid"
)

// SchedulePayment records an upcoming rent due for a tenant as a pending
// payment. Agent/admin only.
func SchedulePayment(st store.Store, actor *model.User, tenantID string, amount float64, due time.Time) (*model.Payment, error) {
	if actor.Role != model.RoleAgent && actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	tenant := state.User(tenantID)
	if tenant == nil || tenant.Role != model.RoleTenant {
		return nil, ErrUserNotFound
	}
	if tenant.AssignedPropertyID == "" {
		return nil, ErrPropertyNotFound
	}

	p := model.Payment{
		ID:         uuid.NewString(),
		TenantID:   tenant.ID,
		PropertyID: tenant.AssignedPropertyID,
		Amount:     amount,
		Date:       due,
		Status:     model.PaymentPending,
	}
	state.Payments = append(state.Payments, p)

	notify(state, tenant.ID,
		"Rent payment due",
		"A rent payment has been scheduled for your unit.",
		model.NotifyInfo, "payments")

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &p, nil
}

// SettlePayment moves one of the tenant's own payments from pending to
// paid and stamps the settlement time. The amount never changes and a paid
// payment is immutable. No partial payments, no refunds.
func SettlePayment(st store.Store, tenant *model.User, paymentID string) (*model.Payment, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	p := state.Payment(paymentID)
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	if tenant.Role == model.RoleTenant && p.TenantID != tenant.ID {
		return nil, ErrForbidden
	}
	if p.Status != model.PaymentPending {
		return nil, ErrPaymentAlreadySettled
	}

	p.Status = model.PaymentPaid
	p.Date = time.Now().UTC()

	notify(state, p.TenantID,
		"Payment received",
		"Your rent payment has been recorded. Thank you.",
		model.NotifySuccess, "payments")

	updated := *p
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}
