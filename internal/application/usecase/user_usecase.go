package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
	"github.com/jhoicas/frontino-api/pkg/hash"
)

// UserUseCase aplica reglas de negocio para usuarios. El email es único y
// se compara de forma sensible a mayúsculas.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher hash.PasswordHasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, hasher hash.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create valida, hashea la contraseña y persiste un usuario nuevo. El email
// duplicado se rechaza antes de tocar la persistencia.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido %q", domain.ErrInvalidUserData, in.Email)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password es requerido", domain.ErrInvalidUserData)
	}
	if !entity.ValidRole(in.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidUserData, in.Rol)
	}

	existing, err := uc.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, in.Email)
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUserData, err)
	}

	accounts := in.IDAssociatedAccounts
	if accounts == nil {
		accounts = []string{}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now()
	user := &entity.User{
		ID:                   uuid.New().String(),
		IDAssociatedAccounts: accounts,
		Email:                in.Email,
		Password:             hashed,
		Rol:                  in.Rol,
		Active:               active,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return uc.repo.Save(ctx, user)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return user, nil
}

// GetAll lista todos los usuarios.
func (uc *UserUseCase) GetAll(ctx context.Context) ([]*entity.User, error) {
	return uc.repo.FindAll(ctx)
}

// FindByEmail obtiene un usuario por email exacto.
func (uc *UserUseCase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	}
	return user, nil
}

// Update aplica un parche sobre un usuario existente. Si cambia el email se
// re-verifica la unicidad; si viene password, llega en claro y se hashea.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	if in.Rol != nil && !entity.ValidRole(*in.Rol) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidUserData, *in.Rol)
	}
	if in.Email != nil && *in.Email != existing.Email {
		dup, err := uc.repo.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmailAlreadyExists, *in.Email)
		}
	}

	patch := repository.UserPatch{
		IDAssociatedAccounts: in.IDAssociatedAccounts,
		Email:                in.Email,
		Rol:                  in.Rol,
		Active:               in.Active,
	}
	if in.Password != nil {
		hashed, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUserData, err)
		}
		patch.Password = &hashed
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete elimina un usuario; confirma la existencia antes de borrar.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}
