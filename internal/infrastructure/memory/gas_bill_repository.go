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

var _ repository.GasBillRepository = (*GasBillRepo)(nil)

// GasBillRepo repositorio de facturas de gas en memoria.
type GasBillRepo struct {
	mu    sync.RWMutex
	items map[string]entity.GasBill
	order []string
}

// NewGasBillRepo crea un repositorio de facturas vacío.
func NewGasBillRepo() *GasBillRepo {
	return &GasBillRepo{items: make(map[string]entity.GasBill)}
}

func (r *GasBillRepo) Save(_ context.Context, bill *entity.GasBill) (*entity.GasBill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[bill.ID]; !ok {
		r.order = append(r.order, bill.ID)
	}
	r.items[bill.ID] = *bill
	saved := r.items[bill.ID]
	return &saved, nil
}

func (r *GasBillRepo) FindByID(_ context.Context, id string) (*entity.GasBill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bill, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &bill, nil
}

func (r *GasBillRepo) FindAll(_ context.Context) ([]*entity.GasBill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bills := make([]*entity.GasBill, 0, len(r.order))
	for _, id := range r.order {
		bill := r.items[id]
		bills = append(bills, &bill)
	}
	return bills, nil
}

func (r *GasBillRepo) FindByTimeAndMember(_ context.Context, billTime, idMember string) (*entity.GasBill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		bill := r.items[id]
		if bill.Time == billTime && bill.IDMember == idMember {
			return &bill, nil
		}
	}
	return nil, nil
}

func (r *GasBillRepo) FindInIDsMembers(_ context.Context, idMembers []string) ([]*entity.GasBill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(idMembers))
	for _, id := range idMembers {
		wanted[id] = true
	}
	bills := make([]*entity.GasBill, 0)
	for _, id := range r.order {
		bill := r.items[id]
		if wanted[bill.IDMember] {
			bills = append(bills, &bill)
		}
	}
	return bills, nil
}

func (r *GasBillRepo) Update(_ context.Context, id string, patch repository.GasBillPatch) (*entity.GasBill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bill, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	if patch.IDMember != nil {
		bill.IDMember = *patch.IDMember
	}
	if patch.Time != nil {
		bill.Time = *patch.Time
	}
	if patch.M3 != nil {
		bill.M3 = *patch.M3
	}
	if patch.URLPhoto != nil {
		bill.URLPhoto = *patch.URLPhoto
	}
	bill.UpdatedAt = time.Now()
	r.items[id] = bill
	return &bill, nil
}

func (r *GasBillRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
