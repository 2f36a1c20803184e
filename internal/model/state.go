package model

import "encoding/json"

// AppState is the whole application record: every collection in one
// document, loaded and saved as a unit.
type AppState struct {
	Users         []User              `json:"users"`
	Properties    []Property          `json:"properties"`
	Applications  []TenantApplication `json:"applications"`
	Agreements    []Agreement         `json:"agreements"`
	Payments      []Payment           `json:"payments"`
	Tickets       []MaintenanceTicket `json:"tickets"`
	Notifications []Notification      `json:"notifications"`
}

// User returns a pointer into the state's user slice, or nil.
func (s *AppState) User(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByEmail returns a pointer into the state's user slice, or nil.
func (s *AppState) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// Property returns a pointer into the state's property slice, or nil.
func (s *AppState) Property(id string) *Property {
	for i := range s.Properties {
		if s.Properties[i].ID == id {
			return &s.Properties[i]
		}
	}
	return nil
}

// Application returns a pointer into the state's application slice, or nil.
func (s *AppState) Application(id string) *TenantApplication {
	for i := range s.Applications {
		if s.Applications[i].ID == id {
			return &s.Applications[i]
		}
	}
	return nil
}

// ApprovedApplicationByUser returns the applicant's APPROVED dossier, or
// nil. A user can hold several dossiers over time; only the approved one
// qualifies for assignment.
func (s *AppState) ApprovedApplicationByUser(userID string) *TenantApplication {
	for i := range s.Applications {
		if s.Applications[i].UserID == userID && s.Applications[i].Status == ApplicationApproved {
			return &s.Applications[i]
		}
	}
	return nil
}

// Agreement returns a pointer into the state's agreement slice, or nil.
func (s *AppState) Agreement(id string) *Agreement {
	for i := range s.Agreements {
		if s.Agreements[i].ID == id {
			return &s.Agreements[i]
		}
	}
	return nil
}

// Payment returns a pointer into the state's payment slice, or nil.
func (s *AppState) Payment(id string) *Payment {
	for i := range s.Payments {
		if s.Payments[i].ID == id {
			return &s.Payments[i]
		}
	}
	return nil
}

// Ticket returns a pointer into the state's ticket slice, or nil.
func (s *AppState) Ticket(id string) *MaintenanceTicket {
	for i := range s.Tickets {
		if s.Tickets[i].ID == id {
			return &s.Tickets[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the state. The store hands out copies so a
// failed transition never leaks partial mutations into the shared record.
func (s *AppState) Clone() *AppState {
	raw, err := json.Marshal(s)
	if err != nil {
		// AppState is plain data; marshaling cannot fail.
		panic("appstate clone: " + err.Error())
	}
	var out AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("appstate clone: " + err.Error())
	}
	return &out
}
