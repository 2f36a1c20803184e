package model

import "time"

// AgreementStatus is the lifecycle state of a lease agreement.
type AgreementStatus string

const (
	AgreementActive     AgreementStatus = "active"
	AgreementExpired    AgreementStatus = "expired"
	AgreementTerminated AgreementStatus = "terminated"
)

// Agreement is a lease created exactly once per tenant assignment.
// DocumentURL is attached later via upload; nothing else mutates.
type Agreement struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"property_id"`
	TenantID    string          `json:"tenant_id"`
	Version     int             `json:"version"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      AgreementStatus `json:"status"`
	DocumentURL string          `json:"document_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LeaseEnd computes the lease end for a one year term: start + 1y - 1d,
// so a lease starting 2025-01-01 ends 2025-12-31.
func LeaseEnd(start time.Time) time.Time {
	return start.AddDate(1, 0, 0).AddDate(0, 0, -1)
}
