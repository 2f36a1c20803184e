package auth

import (
	"testing"

	"property-service/internal/model"
	"property-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() store.Store {
	return store.NewMemoryStore(store.Seed())
}

func TestEmailAuthenticator(t *testing.T) {
	st := newStore()

	u, err := EmailAuthenticator{}.Authenticate(st, Credentials{Email: "chiamaka@example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleTenant, u.Role)

	_, err = EmailAuthenticator{}.Authenticate(st, Credentials{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestRegisterAndCredentialAuthenticator(t *testing.T) {
	st := newStore()

	u, err := Register(st, Registration{
		Name:     "New Tenant",
		Email:    "new@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleTenant, u.Role)
	assert.NotEmpty(t, u.PasswordHash)

	got, err := CredentialAuthenticator{}.Authenticate(st, Credentials{Email: "new@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = CredentialAuthenticator{}.Authenticate(st, Credentials{Email: "new@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialAuthenticatorLegacyAccount(t *testing.T) {
	st := newStore()

	// seeded accounts carry no hash and still log in by lookup
	u, err := CredentialAuthenticator{}.Authenticate(st, Credentials{Email: "admin@propertyservice.dev"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestRegisterValidation(t *testing.T) {
	st := newStore()

	_, err := Register(st, Registration{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = Register(st, Registration{Name: "Dup", Email: "chiamaka@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
