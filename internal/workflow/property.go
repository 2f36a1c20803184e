package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"

	"github.com/google/uuid"
)

// PropertyInput carries the mutable fields of a property.
type PropertyInput struct {
	Name        string                 `json:"name"`
	Location    string                 `json:"location"`
	Rent        float64                `json:"rent"`
	Category    model.PropertyCategory `json:"category"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"image_url"`
}

// canManage reports whether the actor may mutate the given property.
// Admins manage everything; agents manage their own portfolio.
func canManage(actor *model.User, p *model.Property) bool {
	if actor.Role == model.RoleAdmin {
		return true
	}
	return actor.Role == model.RoleAgent && p.AgentID == actor.ID
}

// CreateProperty adds a new unit in DRAFT owned by the acting agent, or by
// the named agent when an admin creates on an agent's behalf.
func CreateProperty(st store.Store, actor *model.User, agentID string, in PropertyInput) (*model.Property, error) {
	if actor.Role != model.RoleAgent && actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	if actor.Role == model.RoleAgent {
		agentID = actor.ID
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	// An admin must name a real agent, otherwise the unit would be
	// orphaned from every agent's portfolio.
	if agent := state.User(agentID); agent == nil || agent.Role != model.RoleAgent {
		return nil, ErrUserNotFound
	}

	now := time.Now().UTC()
	p := model.Property{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Location:    in.Location,
		Rent:        in.Rent,
		Status:      model.PropertyDraft,
		AgentID:     agentID,
		Category:    in.Category,
		Type:        in.Type,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	state.Properties = append(state.Properties, p)

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProperty replaces a property's mutable fields. Tenancy and status
// are handled by their own transitions.
func UpdateProperty(st store.Store, actor *model.User, propertyID string, in PropertyInput) (*model.Property, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	p := state.Property(propertyID)
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if !canManage(actor, p) {
		return nil, ErrForbidden
	}

	p.Name = in.Name
	p.Location = in.Location
	p.Rent = in.Rent
	p.Category = in.Category
	p.Type = in.Type
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.UpdatedAt = time.Now().UTC()

	updated := *p
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetPropertyStatus moves a property between DRAFT, LISTED, VACANT and
// ARCHIVED. OCCUPIED is only reachable through AssignTenant, and an
// occupied property cannot be archived out from under its tenant.
func SetPropertyStatus(st store.Store, actor *model.User, propertyID string, status model.PropertyStatus) (*model.Property, error) {
	switch status {
	case model.PropertyDraft, model.PropertyListed, model.PropertyVacant, model.PropertyArchived:
	default:
		return nil, ErrInvalidStatus
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	p := state.Property(propertyID)
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if !canManage(actor, p) {
		return nil, ErrForbidden
	}
	if p.Status == model.PropertyOccupied {
		return nil, ErrPropertyOccupied
	}

	p.Status = status
	p.UpdatedAt = time.Now().UTC()

	updated := *p
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AssignTenant moves an approved, unassigned applicant into a property.
// The side effects are applied as one unit on a single save: property
// tenancy and status, the tenant's assigned unit, the approved
// application's property reference, exactly one version-1 agreement running
// start to start+1y-1d, and one SUCCESS notification to the tenant.
func AssignTenant(st store.Store, actor *model.User, propertyID, tenantID string) (*model.Agreement, error) {
	if actor.Role != model.RoleAgent && actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	p := state.Property(propertyID)
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	if !canManage(actor, p) {
		return nil, ErrForbidden
	}
	if p.Status == model.PropertyOccupied {
		return nil, ErrPropertyOccupied
	}
	if p.Status == model.PropertyArchived {
		return nil, ErrPropertyArchived
	}

	tenant := state.User(tenantID)
	if tenant == nil || tenant.Role != model.RoleTenant {
		return nil, ErrUserNotFound
	}
	if tenant.AssignedPropertyID != "" {
		return nil, ErrTenantAlreadyAssigned
	}

	app := state.ApprovedApplicationByUser(tenantID)
	if app == nil {
		return nil, ErrNoApprovedApplication
	}

	now := time.Now().UTC()
	start := now.Truncate(24 * time.Hour)
	end := model.LeaseEnd(start)

	p.TenantID = tenant.ID
	p.Status = model.PropertyOccupied
	p.RentStartDate = &start
	p.RentExpiryDate = &end
	p.UpdatedAt = now

	tenant.AssignedPropertyID = p.ID
	tenant.UpdatedAt = now

	app.PropertyID = p.ID
	app.UpdatedAt = now

	agreement := model.Agreement{
		ID:         uuid.NewString(),
		PropertyID: p.ID,
		TenantID:   tenant.ID,
		Version:    1,
		StartDate:  start,
		EndDate:    end,
		Status:     model.AgreementActive,
		CreatedAt:  now,
	}
	state.Agreements = append(state.Agreements, agreement)

	notify(state, tenant.ID,
		"Congratulations, you have a new home",
		"You have been assigned to "+p.Name+". Your lease agreement is ready.",
		model.NotifySuccess, "agreements")

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &agreement, nil
}
