package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
)

var _ repository.AuthRepository = (*AuthRepo)(nil)

// AuthRepo repositorio de sesiones en memoria.
type AuthRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Auth
	order []string
}

// NewAuthRepo crea un repositorio de sesiones vacío.
func NewAuthRepo() *AuthRepo {
	return &AuthRepo{items: make(map[string]entity.Auth)}
}

func (r *AuthRepo) Save(_ context.Context, auth *entity.Auth) (*entity.Auth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[auth.ID]; !ok {
		r.order = append(r.order, auth.ID)
	}
	r.items[auth.ID] = *auth
	saved := r.items[auth.ID]
	return &saved, nil
}

func (r *AuthRepo) FindByID(_ context.Context, id string) (*entity.Auth, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auth, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &auth, nil
}

func (r *AuthRepo) FindByToken(_ context.Context, token string) (*entity.Auth, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		auth := r.items[id]
		if auth.Token == token {
			return &auth, nil
		}
	}
	return nil, nil
}

func (r *AuthRepo) Update(_ context.Context, auth *entity.Auth) (*entity.Auth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[auth.ID]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthNotFound, auth.ID)
	}
	r.items[auth.ID] = *auth
	updated := r.items[auth.ID]
	return &updated, nil
}

func (r *AuthRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrAuthNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
