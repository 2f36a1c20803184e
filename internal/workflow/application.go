package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"

	"github.com/google/uuid"
)

// SubmitApplication files a tenant's dossier routed to the given agent.
// The risk score and recommendation are assigned here, once; later
// transitions never recompute them.
func SubmitApplication(st store.Store, applicant *model.User, agentID string, details model.ApplicantDetails, recommendation string) (*model.TenantApplication, error) {
	if applicant.Role != model.RoleTenant {
		return nil, ErrForbidden
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	if agent := state.User(agentID); agent == nil || agent.Role != model.RoleAgent {
		return nil, ErrUserNotFound
	}

	if recommendation == "" {
		recommendation = "Automated screening complete. Pending manual review."
	}

	now := time.Now().UTC()
	app := model.TenantApplication{
		ID:               uuid.NewString(),
		UserID:           applicant.ID,
		PropertyID:       model.PendingPropertyID,
		AgentID:          agentID,
		Status:           model.ApplicationPending,
		SubmissionDate:   now,
		Details:          details,
		RiskScore:        scorer.Score(details),
		AIRecommendation: recommendation,
		UpdatedAt:        now,
	}
	state.Applications = append(state.Applications, app)

	notify(state, agentID,
		"New tenant application",
		details.FullName+" submitted a new application for review.",
		model.NotifyInfo, "applications")

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &app, nil
}

// EditApplication replaces the dossier's mutable field set. Only PENDING
// applications are editable; the prior risk score and recommendation are
// retained.
func EditApplication(st store.Store, actor *model.User, applicationID string, details model.ApplicantDetails) (*model.TenantApplication, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	app := state.Application(applicationID)
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if actor.Role == model.RoleTenant && app.UserID != actor.ID {
		return nil, ErrForbidden
	}
	if app.Status != model.ApplicationPending {
		return nil, ErrApplicationNotEditable
	}

	app.Details = details
	app.UpdatedAt = time.Now().UTC()

	updated := *app
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}

// decisionAllowed encodes the application state machine. PENDING may move
// to any of the review or final states; REVIEWING and MORE_INFO_REQUIRED
// may still reach a final decision; APPROVED and REJECTED are terminal.
func decisionAllowed(from, to model.ApplicationStatus) bool {
	switch to {
	case model.ApplicationReviewing, model.ApplicationMoreInfoRequired:
		return from == model.ApplicationPending
	case model.ApplicationApproved, model.ApplicationRejected:
		return !from.Terminal()
	}
	return false
}

// DecideApplication applies an agent/admin decision and notifies the
// applicant: SUCCESS on approval, INFO otherwise.
func DecideApplication(st store.Store, actor *model.User, applicationID string, decision model.ApplicationStatus) (*model.TenantApplication, error) {
	if actor.Role != model.RoleAgent && actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	app := state.Application(applicationID)
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if actor.Role == model.RoleAgent && app.AgentID != actor.ID {
		return nil, ErrForbidden
	}
	if app.Status.Terminal() {
		return nil, ErrApplicationDecided
	}
	if !decisionAllowed(app.Status, decision) {
		return nil, ErrInvalidStatus
	}

	app.Status = decision
	app.UpdatedAt = time.Now().UTC()

	switch decision {
	case model.ApplicationApproved:
		notify(state, app.UserID,
			"Application approved",
			"Your tenant application has been approved. An agent will assign your unit shortly.",
			model.NotifySuccess, "applications")
	case model.ApplicationMoreInfoRequired:
		notify(state, app.UserID,
			"More information required",
			"Your application needs additional information before it can proceed.",
			model.NotifyInfo, "applications")
	default:
		notify(state, app.UserID,
			"Application "+string(decision),
			"Your tenant application status changed to "+string(decision)+".",
			model.NotifyInfo, "applications")
	}

	updated := *app
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}
