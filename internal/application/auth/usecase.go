// Package auth contiene los casos de uso de autenticación del panel: login,
// usuario actual, cambio de contraseña y alta de administradores.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
	"github.com/jhoicas/woodini-site/pkg/password"
)

// DefaultAdminPassword contraseña del admin creado en el arranque. Solo es aceptable
// porque ese usuario nace con MustChangePassword=true.
const DefaultAdminPassword = "admin123"

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, now: time.Now}
}

// Login verifica usuario/contraseña. Devuelve ErrInvalidCredentials tanto si el usuario
// no existe como si el hash no coincide. No hay bloqueo por intentos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

// CurrentUser devuelve los campos públicos del usuario de la sesión.
// Si el usuario ya no existe la sesión se considera inválida (ErrUnauthorized).
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.getSessionUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword verifica la contraseña actual, guarda el nuevo hash y limpia
// MustChangePassword en la misma escritura.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) (*dto.UserResponse, error) {
	user, err := uc.getSessionUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !password.Verify(user.PasswordHash, in.CurrentPassword) {
		return nil, domain.ErrInvalidCurrentPassword
	}
	if err := password.Validate(in.NewPassword); err != nil {
		return nil, domain.Invalid("newPassword", err.Error())
	}
	hash, err := password.Hash(in.NewPassword, password.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, hash, false); err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	return toUserResponse(user), nil
}

// EnsureDefaultAdmin crea el usuario "admin" con la contraseña por defecto y cambio
// obligatorio si todavía no existe. Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, entity.DefaultAdminUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.createUser(ctx, entity.DefaultAdminUsername, DefaultAdminPassword, password.DefaultCost)
	if errors.Is(err, domain.ErrDuplicate) {
		// otra instancia lo creó entre la lectura y la inserción
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateAdmin alta fuera de banda (cmd/create_admin): valida longitud, rechaza duplicados
// y crea el usuario con coste bcrypt alto y cambio de contraseña obligatorio.
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, username, plain string) (*entity.User, error) {
	if username == "" {
		return nil, domain.Invalid("username", "es requerido")
	}
	if err := password.Validate(plain); err != nil {
		return nil, domain.Invalid("password", err.Error())
	}
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	return uc.createUser(ctx, username, plain, password.AdminCost)
}

func (uc *AuthUseCase) createUser(ctx context.Context, username, plain string, cost int) (*entity.User, error) {
	hash, err := password.Hash(plain, cost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:                 uuid.New().String(),
		Username:           username,
		PasswordHash:       hash,
		MustChangePassword: true,
		CreatedAt:          uc.now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) getSessionUser(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		MustChangePassword: u.MustChangePassword,
	}
}
