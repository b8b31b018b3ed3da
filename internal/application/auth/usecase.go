package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
	"github.com/jhoicas/frontino-api/pkg/hash"
	"github.com/jhoicas/frontino-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, logout, refresh,
// reset-password y CRUD de sesiones.
//
// Un email inexistente y una contraseña incorrecta producen el mismo
// ErrInvalidCredentials; los fallos del almacén NO se colapsan en él y
// llegan al handler como 500.
type AuthUseCase struct {
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	hasher   hash.PasswordHasher
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authRepo repository.AuthRepository, userRepo repository.UserRepository, hasher hash.PasswordHasher, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{authRepo: authRepo, userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg}
}

// Login verifica email/contraseña, firma un JWT con {sub, email, rol} y
// persiste la sesión emitida.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Auth, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || !uc.hasher.Compare(in.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}

	auth := &entity.Auth{
		ID:        uuid.New().String(),
		IDUser:    user.ID,
		Token:     token,
		CreatedAt: time.Now(),
	}
	return uc.authRepo.Save(ctx, auth)
}

// Logout elimina la sesión asociada al token. Un token desconocido se
// reporta como no encontrado.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	auth, err := uc.authRepo.FindByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("buscar sesión: %w", err)
	}
	if auth == nil {
		return fmt.Errorf("%w: %s", domain.ErrTokenNotFound, token)
	}
	return uc.authRepo.Delete(ctx, auth.ID)
}

// RefreshToken re-verifica el token viejo, confirma que pertenece al usuario
// reclamado y muta el token de la sesión en sitio con una nueva expiración.
func (uc *AuthUseCase) RefreshToken(ctx context.Context, in dto.RefreshTokenRequest) (*entity.Auth, error) {
	auth, err := uc.authRepo.FindByToken(ctx, in.OldToken)
	if err != nil {
		return nil, fmt.Errorf("buscar sesión: %w", err)
	}
	if auth == nil || auth.IDUser != in.IDUser {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, in.OldToken)
	}

	claims, err := jwt.Parse(uc.jwtCfg.Secret, in.OldToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, in.OldToken)
	}

	newToken, err := jwt.Generate(uc.jwtCfg.Secret, claims.Subject, claims.Email, claims.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}

	refreshed := auth.WithToken(newToken)
	return uc.authRepo.Update(ctx, &refreshed)
}

// ResetPassword re-autentica con la contraseña actual y persiste el hash de
// la nueva mediante un update parcial del usuario.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || !uc.hasher.Compare(in.Password, user.Password) {
		return domain.ErrInvalidCredentials
	}

	hashed, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	_, err = uc.userRepo.Update(ctx, user.ID, repository.UserPatch{Password: &hashed})
	return err
}

// CreateAuth alta manual de una sesión (endpoint administrativo).
func (uc *AuthUseCase) CreateAuth(ctx context.Context, in dto.CreateAuthRequest) (*entity.Auth, error) {
	auth := &entity.Auth{
		ID:        uuid.New().String(),
		IDUser:    in.IDUser,
		Token:     in.Token,
		CreatedAt: time.Now(),
	}
	return uc.authRepo.Save(ctx, auth)
}

// GetAuthByID obtiene una sesión por ID.
func (uc *AuthUseCase) GetAuthByID(ctx context.Context, id string) (*entity.Auth, error) {
	auth, err := uc.authRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthNotFound, id)
	}
	return auth, nil
}

// FindByToken obtiene una sesión por su token exacto.
func (uc *AuthUseCase) FindByToken(ctx context.Context, token string) (*entity.Auth, error) {
	auth, err := uc.authRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenNotFound, token)
	}
	return auth, nil
}

// DeleteAuth elimina una sesión por ID; confirma la existencia antes de borrar.
func (uc *AuthUseCase) DeleteAuth(ctx context.Context, id string) error {
	auth, err := uc.authRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if auth == nil {
		return fmt.Errorf("%w: %s", domain.ErrAuthNotFound, id)
	}
	return uc.authRepo.Delete(ctx, id)
}
