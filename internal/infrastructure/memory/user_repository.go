package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	items map[string]entity.User
	order []string
}

// NewUserRepo crea un repositorio de usuarios vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{items: make(map[string]entity.User)}
}

func (r *UserRepo) Save(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.items[user.ID] = *user
	saved := r.items[user.ID]
	return &saved, nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		user := r.items[id]
		users = append(users, &user)
	}
	return users, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Comparación exacta, sensible a mayúsculas.
	for _, id := range r.order {
		user := r.items[id]
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	if patch.IDAssociatedAccounts != nil {
		user.IDAssociatedAccounts = *patch.IDAssociatedAccounts
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Rol != nil {
		user.Rol = *patch.Rol
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	user.UpdatedAt = time.Now()
	r.items[id] = user
	return &user, nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
