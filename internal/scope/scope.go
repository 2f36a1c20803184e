// Package scope derives the subset of each collection a user may see.
// Admins see everything. Agents see their own properties and applications
// but all tickets, payments and agreements; tenants see only their own
// records. The agent asymmetry is intentional product behavior.
package scope

import "property-service/internal/model"

// Properties returns the properties visible to the user.
func Properties(u *model.User, state *model.AppState) []model.Property {
	switch u.Role {
	case model.RoleAdmin:
		return state.Properties
	case model.RoleAgent:
		out := make([]model.Property, 0)
		for _, p := range state.Properties {
			if p.AgentID == u.ID {
				out = append(out, p)
			}
		}
		return out
	default:
		out := make([]model.Property, 0)
		for _, p := range state.Properties {
			if u.AssignedPropertyID != "" && p.ID == u.AssignedPropertyID {
				out = append(out, p)
			}
		}
		return out
	}
}

// Applications returns the tenant applications visible to the user.
func Applications(u *model.User, state *model.AppState) []model.TenantApplication {
	switch u.Role {
	case model.RoleAdmin:
		return state.Applications
	case model.RoleAgent:
		out := make([]model.TenantApplication, 0)
		for _, a := range state.Applications {
			if a.AgentID == u.ID {
				out = append(out, a)
			}
		}
		return out
	default:
		out := make([]model.TenantApplication, 0)
		for _, a := range state.Applications {
			if a.UserID == u.ID {
				out = append(out, a)
			}
		}
		return out
	}
}

// Tickets returns the maintenance tickets visible to the user.
// Agents see all tickets, not only those on their own properties.
func Tickets(u *model.User, state *model.AppState) []model.MaintenanceTicket {
	switch u.Role {
	case model.RoleAdmin, model.RoleAgent:
		return state.Tickets
	default:
		out := make([]model.MaintenanceTicket, 0)
		for _, t := range state.Tickets {
			if t.TenantID == u.ID {
				out = append(out, t)
			}
		}
		return out
	}
}

// Payments returns the rent payments visible to the user.
func Payments(u *model.User, state *model.AppState) []model.Payment {
	switch u.Role {
	case model.RoleAdmin, model.RoleAgent:
		return state.Payments
	default:
		out := make([]model.Payment, 0)
		for _, p := range state.Payments {
			if p.TenantID == u.ID {
				out = append(out, p)
			}
		}
		return out
	}
}

// Agreements returns the lease agreements visible to the user.
func Agreements(u *model.User, state *model.AppState) []model.Agreement {
	switch u.Role {
	case model.RoleAdmin, model.RoleAgent:
		return state.Agreements
	default:
		out := make([]model.Agreement, 0)
		for _, a := range state.Agreements {
			if a.TenantID == u.ID {
				out = append(out, a)
			}
		}
		return out
	}
}

// Notifications returns the user's own notifications, newest first for
// every role.
func Notifications(u *model.User, state *model.AppState) []model.Notification {
	out := make([]model.Notification, 0)
	for _, n := range state.Notifications {
		if n.UserID == u.ID {
			out = append(out, n)
		}
	}
	return out
}
