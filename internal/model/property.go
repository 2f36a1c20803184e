package model

import "time"

// PropertyStatus is the listing/tenancy state of a property.
type PropertyStatus string

const (
	PropertyDraft    PropertyStatus = "DRAFT"
	PropertyListed   PropertyStatus = "LISTED"
	PropertyVacant   PropertyStatus = "VACANT"
	PropertyOccupied PropertyStatus = "OCCUPIED"
	PropertyArchived PropertyStatus = "ARCHIVED"
)

// PropertyCategory splits the portfolio into residential and commercial units.
type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "RESIDENTIAL"
	CategoryCommercial  PropertyCategory = "COMMERCIAL"
)

// Property represents a managed unit. Rent is the annual amount.
// A property is archived rather than deleted.
type Property struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Location       string           `json:"location"`
	Rent           float64          `json:"rent"`
	Status         PropertyStatus   `json:"status"`
	AgentID        string           `json:"agent_id"`
	TenantID       string           `json:"tenant_id,omitempty"`
	Category       PropertyCategory `json:"category"`
	Type           string           `json:"type"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"image_url,omitempty"`
	RentStartDate  *time.Time       `json:"rent_start_date,omitempty"`
	RentExpiryDate *time.Time       `json:"rent_expiry_date,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Occupied reports whether the property currently has a tenant.
func (p *Property) Occupied() bool {
	return p.Status == PropertyOccupied && p.TenantID != ""
}
