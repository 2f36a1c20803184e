// Package auth resolves users at login and registration. The demo-faithful
// authenticator is an email lookup with no credential check; the password
// authenticator is the hardened drop-in selected by AUTH_MODE.
package auth

import (
	"errors"
	"time"

	"property-service/internal/model"
	"property-service/internal/store"
	"property-service/pkg/config"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownEmail       = errors.New("no account exists for this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingField       = errors.New("name and email are required")
)

// Credentials is what a login attempt presents.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Authenticator resolves login credentials to a user record.
type Authenticator interface {
	Authenticate(st store.Store, creds Credentials) (*model.User, error)
}

// EmailAuthenticator resolves login by email lookup alone. A demo
// placeholder, not a security model.
type EmailAuthenticator struct{}

// Authenticate looks the email up and returns the user
func (EmailAuthenticator) Authenticate(st store.Store, creds Credentials) (*model.User, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	u := state.UserByEmail(creds.Email)
	if u == nil {
		return nil, ErrUnknownEmail
	}
	out := *u
	return &out, nil
}

// CredentialAuthenticator additionally verifies a bcrypt password hash.
// Accounts created before a password was set still log in by lookup.
type CredentialAuthenticator struct{}

// Authenticate looks the email up and verifies the password when one is set
func (CredentialAuthenticator) Authenticate(st store.Store, creds Credentials) (*model.User, error) {
	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	u := state.UserByEmail(creds.Email)
	if u == nil {
		return nil, ErrUnknownEmail
	}
	if u.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
			return nil, ErrInvalidCredentials
		}
	}
	out := *u
	return &out, nil
}

// FromConfig selects the authenticator for the configured mode
func FromConfig(cfg *config.Config) Authenticator {
	if cfg.Auth.Mode == "password" {
		return CredentialAuthenticator{}
	}
	return EmailAuthenticator{}
}

// Registration is what a signup presents. Password is optional in email
// mode and hashed when present.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

// Register creates a new TENANT account. Missing required fields and
// duplicate emails are user-facing errors, not failures.
func Register(st store.Store, reg Registration) (*model.User, error) {
	if reg.Name == "" || reg.Email == "" {
		return nil, ErrMissingField
	}

	state, err := st.Load()
	if err != nil {
		return nil, err
	}

	if state.UserByEmail(reg.Email) != nil {
		return nil, ErrEmailTaken
	}

	var hash string
	if reg.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(hashed)
	}

	now := time.Now().UTC()
	u := model.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		Role:         model.RoleTenant,
		Phone:        reg.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	state.Users = append(state.Users, u)

	if err := st.Save(state); err != nil {
		return nil, err
	}
	return &u, nil
}
