package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"

	"github.com/google/uuid"
)

// TicketInput carries a tenant's maintenance report.
type TicketInput struct {
	Issue    string `json:"issue"`
	ImageURL string `json:"image_url"`
}

// CreateTicket opens a maintenance ticket for the tenant's assigned unit.
// Priority and assessment come from the caller, which consults the external
// assessment service and falls back to MEDIUM with a fixed note when the
// service fails; ticket creation itself never fails on assessment problems.
func CreateTicket(st store.Store, tenant *model.User, in TicketInput, priority model.TicketPriority, assessment string) (*model.MaintenanceTicket, error) {
	if tenant.Role != model.RoleTenant {
		return nil, ErrForbidden
	}
	if tenant.AssignedPropertyID == "" {
		return nil, ErrPropertyNotFound
	}
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	p := state.Property(tenant.AssignedPropertyID)
	if p == nil {
		return nil, ErrPropertyNotFound
	}

	t := model.MaintenanceTicket{
		ID:           uuid.NewString(),
		TenantID:     tenant.ID,
		PropertyID:   p.ID,
		Issue:        in.Issue,
		Status:       model.TicketOpen,
		Priority:     priority,
		CreatedAt:    time.Now().UTC(),
		ImageURL:     in.ImageURL,
		AIAssessment: assessment,
	}
	state.Tickets = append(state.Tickets, t)

	notify(state, p.AgentID,
		"New maintenance ticket",
		"A "+string(priority)+" priority issue was reported at "+p.Name+".",
		model.NotifyWarning, "maintenance")

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &t, nil
}

// TransitionTicket sets a ticket's status. Any jump among OPEN,
// IN_PROGRESS and RESOLVED is allowed; only agents and admins may move
// tickets. The tenant gets an INFO notification.
func TransitionTicket(st store.Store, actor *model.User, ticketID string, status model.TicketStatus) (*model.MaintenanceTicket, error) {
	if actor.Role != model.RoleAgent && actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	t := state.Ticket(ticketID)
	if t == nil {
		return nil, ErrTicketNotFound
	}

	t.Status = status

	notify(state, t.TenantID,
		"Maintenance update",
		"Your maintenance ticket is now "+string(status)+".",
		model.NotifyInfo, "maintenance")

	updated := *t
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}
