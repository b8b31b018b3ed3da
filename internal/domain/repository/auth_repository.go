package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// AuthRepository define el puerto de persistencia para sesiones (Auth).
type AuthRepository interface {
	Save(ctx context.Context, auth *entity.Auth) (*entity.Auth, error)
	FindByID(ctx context.Context, id string) (*entity.Auth, error)
	FindByToken(ctx context.Context, token string) (*entity.Auth, error)
	// Update reemplaza el registro completo (el token muta en un refresh).
	Update(ctx context.Context, auth *entity.Auth) (*entity.Auth, error)
	Delete(ctx context.Context, id string) error
}
