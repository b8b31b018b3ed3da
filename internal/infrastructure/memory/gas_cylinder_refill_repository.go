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

var _ repository.GasCylinderRefillRepository = (*GasCylinderRefillRepo)(nil)

// GasCylinderRefillRepo repositorio de recargas de cilindros en memoria.
type GasCylinderRefillRepo struct {
	mu    sync.RWMutex
	items map[string]entity.GasCylinderRefill
	order []string
}

// NewGasCylinderRefillRepo crea un repositorio de recargas vacío.
func NewGasCylinderRefillRepo() *GasCylinderRefillRepo {
	return &GasCylinderRefillRepo{items: make(map[string]entity.GasCylinderRefill)}
}

func (r *GasCylinderRefillRepo) Create(_ context.Context, refill *entity.GasCylinderRefill) (*entity.GasCylinderRefill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[refill.ID]; !ok {
		r.order = append(r.order, refill.ID)
	}
	r.items[refill.ID] = *refill
	saved := r.items[refill.ID]
	return &saved, nil
}

func (r *GasCylinderRefillRepo) FindByID(_ context.Context, id string) (*entity.GasCylinderRefill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refill, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &refill, nil
}

func (r *GasCylinderRefillRepo) FindAll(_ context.Context) ([]*entity.GasCylinderRefill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refills := make([]*entity.GasCylinderRefill, 0, len(r.order))
	for _, id := range r.order {
		refill := r.items[id]
		refills = append(refills, &refill)
	}
	return refills, nil
}

func (r *GasCylinderRefillRepo) FindAllByCylinderID(_ context.Context, cylinderID string) ([]*entity.GasCylinderRefill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refills := make([]*entity.GasCylinderRefill, 0)
	for _, id := range r.order {
		refill := r.items[id]
		if refill.IDGasCylinder == cylinderID {
			refills = append(refills, &refill)
		}
	}
	return refills, nil
}

func (r *GasCylinderRefillRepo) Update(_ context.Context, id string, patch repository.GasCylinderRefillPatch) (*entity.GasCylinderRefill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	refill, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	if patch.FillingPercentage != nil {
		refill.FillingPercentage = *patch.FillingPercentage
	}
	if patch.FillingTime != nil {
		refill.FillingTime = *patch.FillingTime
	}
	if patch.URLVoucher != nil {
		refill.URLVoucher = *patch.URLVoucher
	}
	refill.UpdatedAt = time.Now()
	r.items[id] = refill
	return &refill, nil
}

func (r *GasCylinderRefillRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
