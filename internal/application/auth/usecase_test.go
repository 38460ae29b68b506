package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/testutil/memrepo"
	"github.com/jhoicas/woodini-site/pkg/password"
)

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memrepo.Users) {
	t.Helper()
	users := memrepo.NewUsers()
	return auth.NewAuthUseCase(users), users
}

func TestLogin_ContrasenaCorrectaEIncorrecta(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	created, err := uc.CreateAdmin(ctx, "maria", "secreto1")
	require.NoError(t, err)

	// Sin bloqueo: los intentos fallidos previos no afectan al login correcto.
	for i := 0; i < 5; i++ {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "incorrecta"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "maria", out.Username)
	assert.True(t, out.MustChangePassword)
}

func TestLogin_UsuarioInexistenteYMayusculas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	_, err := uc.CreateAdmin(ctx, "maria", "secreto1")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "Maria", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "la búsqueda por usuario es exacta")
}

func TestChangePassword_LimpiaFlagEInvalidaLaAnterior(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	user, err := uc.CreateAdmin(ctx, "maria", "secreto1")
	require.NoError(t, err)

	out, err := uc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secreto1",
		NewPassword:     "nuevo-secreto",
	})
	require.NoError(t, err)
	assert.False(t, out.MustChangePassword)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "la contraseña anterior ya no sirve")

	me, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "nuevo-secreto"})
	require.NoError(t, err)
	assert.False(t, me.MustChangePassword)
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	user, err := uc.CreateAdmin(ctx, "maria", "secreto1")
	require.NoError(t, err)

	_, err = uc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "otra",
		NewPassword:     "nuevo-secreto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrentPassword)

	me, err := uc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, me.MustChangePassword, "un fallo no toca el flag")
}

func TestChangePassword_NuevaDemasiadoCorta(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	user, err := uc.CreateAdmin(ctx, "maria", "secreto1")
	require.NoError(t, err)

	_, err = uc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "secreto1",
		NewPassword:     "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCurrentUser_SinSesionOUsuarioBorrado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.CurrentUser(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureDefaultAdmin_CreaUnaSolaVezConCambioObligatorio(t *testing.T) {
	ctx := context.Background()
	uc, users := newUseCase(t)

	created, err := uc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, users.Len())

	admin, err := users.GetByUsername(ctx, entity.DefaultAdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.MustChangePassword, "el admin por defecto debe cambiar la contraseña")
	assert.True(t, password.Verify(admin.PasswordHash, auth.DefaultAdminPassword))
}

func TestCreateAdmin_Validaciones(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	_, err := uc.CreateAdmin(ctx, "maria", "12345")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	user, err := uc.CreateAdmin(ctx, "maria", "123456")
	require.NoError(t, err)
	cost, err := password.Cost(user.PasswordHash)
	require.NoError(t, err)
	assert.Equal(t, password.AdminCost, cost)

	_, err = uc.CreateAdmin(ctx, "maria", "otro-secreto")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
