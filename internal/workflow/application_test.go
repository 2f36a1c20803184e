package workflow

import (
	"testing"

	"property-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitApplicationAssignsScoreOnce(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t1")

	app, err := SubmitApplication(st, tenant, "u-agent", model.ApplicantDetails{
		FullName:      "Tenant One",
		Occupation:    "Nurse",
		MonthlyIncome: 400000,
	}, "Steady income.")
	require.NoError(t, err)

	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.Equal(t, model.PendingPropertyID, app.PropertyID)
	assert.GreaterOrEqual(t, app.RiskScore, 60)
	assert.Less(t, app.RiskScore, 95)

	// routing agent gets notified
	state, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "u-agent", state.Notifications[0].UserID)
}

func TestEditApplicationKeepsScore(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t3")

	app, err := EditApplication(st, tenant, "app-pending", model.ApplicantDetails{
		FullName:   "Tenant Three",
		Occupation: "Senior Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer", app.Details.Occupation)
	assert.Equal(t, 66, app.RiskScore)
	assert.Equal(t, "Check employment.", app.AIRecommendation)
}

func TestEditApplicationOnlyWhilePending(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t2")

	_, err := EditApplication(st, tenant, "app-approved", model.ApplicantDetails{FullName: "Tenant Two"})
	assert.ErrorIs(t, err, ErrApplicationNotEditable)
}

func TestEditApplicationOtherTenantForbidden(t *testing.T) {
	st := newStore()
	tenant := userFrom(st, "u-t1")

	_, err := EditApplication(st, tenant, "app-pending", model.ApplicantDetails{FullName: "X"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDecideApplicationApprove(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")

	app, err := DecideApplication(st, agent, "app-pending", model.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, app.Status)

	state, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "u-t3", state.Notifications[0].UserID)
	assert.Equal(t, model.NotifySuccess, state.Notifications[0].Type)
}

func TestDecideApplicationRejectNotifiesInfo(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")

	_, err := DecideApplication(st, agent, "app-pending", model.ApplicationRejected)
	require.NoError(t, err)

	state, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, model.NotifyInfo, state.Notifications[0].Type)
}

func TestDecideApplicationTerminalStates(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")

	// an approved application cannot move anywhere, including back to pending
	_, err := DecideApplication(st, agent, "app-approved", model.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationDecided)

	_, err = DecideApplication(st, agent, "app-approved", model.ApplicationPending)
	assert.ErrorIs(t, err, ErrApplicationDecided)
}

func TestDecideApplicationReviewPath(t *testing.T) {
	st := newStore()
	agent := userFrom(st, "u-agent")

	app, err := DecideApplication(st, agent, "app-pending", model.ApplicationReviewing)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationReviewing, app.Status)

	// a dossier under review can still reach a final decision
	app, err = DecideApplication(st, agent, "app-pending", model.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, app.Status)

	// but not move sideways back into review
	_, err = DecideApplication(st, agent, "app-pending", model.ApplicationMoreInfoRequired)
	assert.ErrorIs(t, err, ErrApplicationDecided)
}

func TestDecideApplicationForeignAgentForbidden(t *testing.T) {
	st := newStore()
	agent2 := userFrom(st, "u-agent2")

	_, err := DecideApplication(st, agent2, "app-pending", model.ApplicationApproved)
	assert.ErrorIs(t, err, ErrForbidden)
}
