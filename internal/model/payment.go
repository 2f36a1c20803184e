package model

import "time"

// PaymentStatus is the settlement state of a rent payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentLate    PaymentStatus = "late"
)

// Payment is a single rent due. The only transition is pending to paid;
// a paid payment is immutable.
type Payment struct {
	ID         string        `json:"id"`
	TenantID   string        `json:"tenant_id"`
	PropertyID string        `json:"property_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`
}
