package workflow

import (
	"time"

	"property-service/internal/model"
	"property-service/internal/store"
)

// ProfileInput carries the fields a user may edit on their own profile.
type ProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile edits the user's own name and phone. Role, email and
// property assignment are not reachable from here.
func UpdateProfile(st store.Store, userID string, in ProfileInput) (*model.User, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	u := state.User(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	u.Phone = in.Phone
	u.UpdatedAt = time.Now().UTC()

	updated := *u
	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &updated, nil
}
