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

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo repositorio de miembros en memoria.
type MemberRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Member
	order []string
}

// NewMemberRepo crea un repositorio de miembros vacío.
func NewMemberRepo() *MemberRepo {
	return &MemberRepo{items: make(map[string]entity.Member)}
}

func (r *MemberRepo) Create(_ context.Context, member *entity.Member) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[member.ID]; !ok {
		r.order = append(r.order, member.ID)
	}
	r.items[member.ID] = *member
	saved := r.items[member.ID]
	return &saved, nil
}

func (r *MemberRepo) FindByID(_ context.Context, id string) (*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &member, nil
}

func (r *MemberRepo) FindAll(_ context.Context) ([]*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*entity.Member, 0, len(r.order))
	for _, id := range r.order {
		member := r.items[id]
		members = append(members, &member)
	}
	return members, nil
}

func (r *MemberRepo) FindAllByClientID(_ context.Context, clientID string) ([]*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]*entity.Member, 0)
	for _, id := range r.order {
		member := r.items[id]
		if member.IDClient == clientID {
			members = append(members, &member)
		}
	}
	return members, nil
}

func (r *MemberRepo) FindByMeterSerial(_ context.Context, meterSerial string) (*entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		member := r.items[id]
		if member.MeterSerial == meterSerial {
			return &member, nil
		}
	}
	return nil, nil
}

func (r *MemberRepo) Update(_ context.Context, id string, patch repository.MemberPatch) (*entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Lastname != nil {
		member.Lastname = *patch.Lastname
	}
	if patch.Email != nil {
		member.Email = *patch.Email
	}
	if patch.Phone != nil {
		member.Phone = *patch.Phone
	}
	if patch.Address != nil {
		member.Address = *patch.Address
	}
	if patch.MeterSerial != nil {
		member.MeterSerial = *patch.MeterSerial
	}
	if patch.Active != nil {
		member.Active = *patch.Active
	}
	member.UpdatedAt = time.Now()
	r.items[id] = member
	return &member, nil
}

func (r *MemberRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}
