package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"
)

// testState builds a fixture with one agent portfolio, an occupied unit,
// an approved applicant waiting for assignment, and a pending dossier.
func testState() *model.AppState {
	now := time.Now().UTC()
	leaseStart := now.AddDate(0, -2, 0)

	return &model.AppState{
		Users: []model.User{
			{ID: "u-admin", Name: "Admin", Email: "admin@test.dev", Role: model.RoleAdmin},
			{ID: "u-agent", Name: "Agent One", Email: "agent@test.dev", Role: model.RoleAgent},
			{ID: "u-agent2", Name: "Agent Two", Email: "agent2@test.dev", Role: model.RoleAgent},
			{ID: "u-t1", Name: "Tenant One", Email: "t1@test.dev", Role: model.RoleTenant, AssignedPropertyID: "p1"},
			{ID: "u-t2", Name: "Tenant Two", Email: "t2@test.dev", Role: model.RoleTenant},
			{ID: "u-t3", Name: "Tenant Three", Email: "t3@test.dev", Role: model.RoleTenant},
		},
		Properties: []model.Property{
			{ID: "p1", Name: "Unit 1", Status: model.PropertyOccupied, AgentID: "u-agent", TenantID: "u-t1", Rent: 1200000, Category: model.CategoryResidential},
			{ID: "p2", Name: "Unit 2", Status: model.PropertyListed, AgentID: "u-agent", Rent: 900000, Category: model.CategoryResidential},
			{ID: "p3", Name: "Unit 3", Status: model.PropertyVacant, AgentID: "u-agent2", Rent: 3000000, Category: model.CategoryCommercial},
		},
		Applications: []model.TenantApplication{
			{
				ID: "app-approved", UserID: "u-t2", PropertyID: model.PendingPropertyID,
				AgentID: "u-agent", Status: model.ApplicationApproved,
				SubmissionDate: now.AddDate(0, 0, -5),
				Details:        model.ApplicantDetails{FullName: "Tenant Two"},
				RiskScore:      81, AIRecommendation: "Looks fine.",
			},
			{
				ID: "app-pending", UserID: "u-t3", PropertyID: model.PendingPropertyID,
				AgentID: "u-agent", Status: model.ApplicationPending,
				SubmissionDate: now.AddDate(0, 0, -1),
				Details:        model.ApplicantDetails{FullName: "Tenant Three", Occupation: "Engineer"},
				RiskScore:      66, AIRecommendation: "Check employment.",
			},
		},
		Agreements: []model.Agreement{
			{ID: "agr-1", PropertyID: "p1", TenantID: "u-t1", Version: 1, StartDate: leaseStart, EndDate: model.LeaseEnd(leaseStart), Status: model.AgreementActive},
		},
		Payments: []model.Payment{
			{ID: "pay-pending", TenantID: "u-t1", PropertyID: "p1", Amount: 1200000, Date: now.AddDate(0, 1, 0), Status: model.PaymentPending},
			{ID: "pay-paid", TenantID: "u-t1", PropertyID: "p1", Amount: 1200000, Date: leaseStart, Status: model.PaymentPaid},
		},
		Tickets: []model.MaintenanceTicket{
			{ID: "tk-1", TenantID: "u-t1", PropertyID: "p1", Issue: "Leaking tap", Status: model.TicketOpen, Priority: model.PriorityMedium},
		},
		Notifications: []model.Notification{
			{ID: "n-1", UserID: "u-t1", Title: "Old", Message: "old", Type: model.NotifyInfo, IsRead: false},
			{ID: "n-2", UserID: "u-t2", Title: "Other", Message: "other", Type: model.NotifyInfo, IsRead: false},
		},
	}
}

func newStore() store.Store {
	return store.NewMemoryStore(testState())
}

func userFrom(st store.Store, id string) *model.User {
	state, err := st.Load()
	if err != nil {
		panic(err)
	}
	u := state.User(id)
	if u == nil {
		panic("fixture user missing: " + id)
	}
	out := *u
	return &out
}
