package store

import (
	"time"

	"property-service/internal/model"
)

// Seed builds the demo dataset the service boots into when no persisted
// record exists: one admin, one agent, an occupied unit with its tenant,
// agreement and payment history, a listed vacancy, and a pending dossier.
func Seed() *model.AppState {
	now := time.Now().UTC()
	leaseStart := now.AddDate(0, -3, 0)
	leaseEnd := model.LeaseEnd(leaseStart)

	return &model.AppState{
		Users: []model.User{
			{
				ID:        "user-admin",
				Name:      "Ada Okafor",
				Email:     "admin@propertyservice.dev",
				Role:      model.RoleAdmin,
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:        "user-agent-1",
				Name:      "Femi Adeyemi",
				Email:     "femi.agent@propertyservice.dev",
				Role:      model.RoleAgent,
				Phone:     "+2348011111111",
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:                 "user-tenant-1",
				Name:               "Chiamaka Eze",
				Email:              "chiamaka@example.com",
				Role:               model.RoleTenant,
				Phone:              "+2348022222222",
				AssignedPropertyID: "prop-1",
				CreatedAt:          now,
				UpdatedAt:          now,
			},
			{
				ID:        "user-tenant-2",
				Name:      "Tunde Bakare",
				Email:     "tunde@example.com",
				Role:      model.RoleTenant,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Properties: []model.Property{
			{
				ID:             "prop-1",
				Name:           "Harmony Court 3B",
				Location:       "Lekki Phase 1, Lagos",
				Rent:           2400000,
				Status:         model.PropertyOccupied,
				AgentID:        "user-agent-1",
				TenantID:       "user-tenant-1",
				Category:       model.CategoryResidential,
				Type:           "2-Bedroom Flat",
				Description:    "Serviced two bedroom flat with dedicated parking.",
				RentStartDate:  &leaseStart,
				RentExpiryDate: &leaseEnd,
				CreatedAt:      now,
				UpdatedAt:      now,
			},
			{
				ID:        "prop-2",
				Name:      "Palm Grove Suites 12",
				Location:  "Ikeja GRA, Lagos",
				Rent:      1800000,
				Status:    model.PropertyListed,
				AgentID:   "user-agent-1",
				Category:  model.CategoryResidential,
				Type:      "1-Bedroom Apartment",
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:        "prop-3",
				Name:      "Marina Works Unit 4",
				Location:  "Marina, Lagos Island",
				Rent:      5200000,
				Status:    model.PropertyVacant,
				AgentID:   "user-agent-1",
				Category:  model.CategoryCommercial,
				Type:      "Open-Plan Office",
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Applications: []model.TenantApplication{
			{
				ID:             "app-1",
				UserID:         "user-tenant-2",
				PropertyID:     model.PendingPropertyID,
				AgentID:        "user-agent-1",
				Status:         model.ApplicationPending,
				SubmissionDate: now.AddDate(0, 0, -2),
				Details: model.ApplicantDetails{
					FullName:       "Tunde Bakare",
					DateOfBirth:    "1991-07-14",
					NationalID:     "NG-44521907",
					Occupation:     "Product Designer",
					Employer:       "Korapay",
					MonthlyIncome:  850000,
					CurrentAddress: "21 Adeola Hopewell St, Victoria Island",
				},
				RiskScore:        78,
				AIRecommendation: "Stable income and verifiable employment. Recommend standard screening.",
				UpdatedAt:        now.AddDate(0, 0, -2),
			},
		},
		Agreements: []model.Agreement{
			{
				ID:         "agr-1",
				PropertyID: "prop-1",
				TenantID:   "user-tenant-1",
				Version:    1,
				StartDate:  leaseStart,
				EndDate:    leaseEnd,
				Status:     model.AgreementActive,
				CreatedAt:  leaseStart,
			},
		},
		Payments: []model.Payment{
			{
				ID:         "pay-1",
				TenantID:   "user-tenant-1",
				PropertyID: "prop-1",
				Amount:     2400000,
				Date:       leaseStart,
				Status:     model.PaymentPaid,
			},
			{
				ID:         "pay-2",
				TenantID:   "user-tenant-1",
				PropertyID: "prop-1",
				Amount:     2400000,
				Date:       leaseStart.AddDate(1, 0, 0),
				Status:     model.PaymentPending,
			},
		},
		Tickets: []model.MaintenanceTicket{
			{
				ID:           "ticket-1",
				TenantID:     "user-tenant-1",
				PropertyID:   "prop-1",
				Issue:        "Kitchen tap drips continuously even when fully closed.",
				Status:       model.TicketOpen,
				Priority:     model.PriorityMedium,
				CreatedAt:    now.AddDate(0, 0, -1),
				AIAssessment: "Likely worn washer or cartridge. Low damage risk, schedule within the week.",
			},
		},
		Notifications: []model.Notification{
			{
				ID:        "notif-1",
				UserID:    "user-tenant-1",
				Title:     "Welcome to your new home",
				Message:   "Your lease for Harmony Court 3B is active.",
				Type:      model.NotifySuccess,
				Timestamp: leaseStart,
				IsRead:    true,
				LinkTo:    "agreements",
			},
		},
	}
}
