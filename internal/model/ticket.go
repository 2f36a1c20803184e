package model

import "time"

// TicketStatus is the progress state of a maintenance ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
)

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// TicketPriority is the triage priority of a maintenance ticket.
type TicketPriority string

const (
	PriorityLow       TicketPriority = "LOW"
	PriorityMedium    TicketPriority = "MEDIUM"
	PriorityHigh      TicketPriority = "HIGH"
	PriorityEmergency TicketPriority = "EMERGENCY"
)

// Valid reports whether p is a known ticket priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// MaintenanceTicket is a tenant-reported issue. Priority is set once at
// creation, either by the assessment service or the MEDIUM default.
type MaintenanceTicket struct {
	ID           string         `json:"id"`
	TenantID     string         `json:"tenant_id"`
	PropertyID   string         `json:"property_id"`
	Issue        string         `json:"issue"`
	Status       TicketStatus   `json:"status"`
	Priority     TicketPriority `json:"priority"`
	CreatedAt    time.Time      `json:"created_at"`
	ImageURL     string         `json:"image_url,omitempty"`
	AIAssessment string         `json:"ai_assessment,omitempty"`
}
