package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// UserPatch actualización parcial de User. Password debe llegar ya hasheada.
type UserPatch struct {
	IDAssociatedAccounts *[]string
	Email                *string
	Password             *string
	Rol                  *string
	Active               *bool
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// FindByEmail compara el email de forma sensible a mayúsculas.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
