package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

func TestAuthenticate_SeededUsers(t *testing.T) {
	r := New()

	user, err := r.Authenticate("admin@admin.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, "Administrador", user.Name)

	user, err = r.Authenticate("teste@teste.com", "teste")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestAuthenticate_RequiresExactMatchOnBothFields(t *testing.T) {
	r := New()

	_, err := r.Authenticate("admin@admin.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = r.Authenticate("nobody@nowhere.com", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdd_DuplicateEmail(t *testing.T) {
	r := New()

	err := r.Add(domain.User{ID: "3", Email: "teste@teste.com", Name: "Dup", Role: domain.RoleCustomer}, "x")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAdd_NewUserCanAuthenticate(t *testing.T) {
	r := New()

	user := domain.User{ID: "3", Email: "nova@cliente.com", Name: "Nova Cliente", Role: domain.RoleCustomer}
	require.NoError(t, r.Add(user, "segredo"))
	assert.True(t, r.HasEmail("nova@cliente.com"))

	got, err := r.Authenticate("nova@cliente.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)

	// Registering the same email again must fail
	assert.ErrorIs(t, r.Add(user, "outro"), ErrEmailTaken)
}
