// Package memory contiene implementaciones en memoria de los puertos de
// persistencia. Se usan en pruebas y para correr la API sin base de datos.
// Conservan el orden de inserción para que los listados sean deterministas.
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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo repositorio de clientes en memoria.
type ClientRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Client
	order []string
}

// NewClientRepo crea un repositorio de clientes vacío.
func NewClientRepo() *ClientRepo {
	return &ClientRepo{items: make(map[string]entity.Client)}
}

func (r *ClientRepo) Save(_ context.Context, client *entity.Client) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[client.ID]; !ok {
		r.order = append(r.order, client.ID)
	}
	r.items[client.ID] = *client
	saved := r.items[client.ID]
	return &saved, nil
}

func (r *ClientRepo) FindByID(_ context.Context, id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (r *ClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*entity.Client, 0, len(r.order))
	for _, id := range r.order {
		client := r.items[id]
		clients = append(clients, &client)
	}
	return clients, nil
}

func (r *ClientRepo) Update(_ context.Context, id string, patch repository.ClientPatch) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	if patch.Name != nil {
		client.Name = *patch.Name
	}
	if patch.Agent != nil {
		client.Agent = *patch.Agent
	}
	if patch.Active != nil {
		client.Active = *patch.Active
	}
	if patch.Phone != nil {
		client.Phone = *patch.Phone
	}
	if patch.Type != nil {
		client.Type = *patch.Type
	}
	if patch.Membership != nil {
		client.Membership = *patch.Membership
	}
	if patch.GasCylinders != nil {
		client.GasCylinders = *patch.GasCylinders
	}
	client.UpdatedAt = time.Now()
	r.items[id] = client
	return &client, nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}

func removeID(order []string, id string) []string {
	out := order[:0]
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
