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
)

// GasBillUseCase aplica reglas de negocio para facturas de gas. La
// agrupación por periodo se compone del lado del cliente sobre dos
// repositorios: no hay transacciones entre colecciones.
type GasBillUseCase struct {
	bills   repository.GasBillRepository
	members repository.MemberRepository
}

// NewGasBillUseCase construye el caso de uso con ambos puertos.
func NewGasBillUseCase(bills repository.GasBillRepository, members repository.MemberRepository) *GasBillUseCase {
	return &GasBillUseCase{bills: bills, members: members}
}

// Save valida y persiste una factura nueva. El par (miembro, periodo) se
// verifica antes de guardar; la comprobación no es atómica.
func (uc *GasBillUseCase) Save(ctx context.Context, in dto.CreateGasBillRequest) (*entity.GasBill, error) {
	if in.IDMember == "" || in.Time == "" {
		return nil, fmt.Errorf("%w: idMember y time son requeridos", domain.ErrInvalidGasBillData)
	}
	if in.M3 <= 0 {
		return nil, fmt.Errorf("%w: m3 debe ser mayor que cero", domain.ErrInvalidGasBillData)
	}

	dup, err := uc.bills.FindByTimeAndMember(ctx, in.Time, in.IDMember)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, fmt.Errorf("%w: ya existe una factura del miembro %s para %s",
			domain.ErrInvalidGasBillData, in.IDMember, in.Time)
	}

	now := time.Now()
	bill := &entity.GasBill{
		ID:        uuid.New().String(),
		IDMember:  in.IDMember,
		Time:      in.Time,
		M3:        in.M3,
		URLPhoto:  in.URLPhoto,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return uc.bills.Save(ctx, bill)
}

// GetByID obtiene una factura por ID.
func (uc *GasBillUseCase) GetByID(ctx context.Context, id string) (*entity.GasBill, error) {
	bill, err := uc.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	return bill, nil
}

// GetAll lista todas las facturas.
func (uc *GasBillUseCase) GetAll(ctx context.Context) ([]*entity.GasBill, error) {
	return uc.bills.FindAll(ctx)
}

// FindByTimeAndMember obtiene la factura de un miembro para un periodo.
func (uc *GasBillUseCase) FindByTimeAndMember(ctx context.Context, billTime, idMember string) (*entity.GasBill, error) {
	bill, err := uc.bills.FindByTimeAndMember(ctx, billTime, idMember)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: miembro %s, periodo %s", domain.ErrGasBillNotFound, idMember, billTime)
	}
	return bill, nil
}

// GroupByTime agrupa las facturas de los miembros de un cliente por periodo
// idéntico. Los periodos en blanco se descartan. El orden de los grupos no
// está garantizado.
func (uc *GasBillUseCase) GroupByTime(ctx context.Context, clientID string) ([]dto.GroupedGasBills, error) {
	members, err := uc.members.FindAllByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	bills, err := uc.bills.FindInIDsMembers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]*entity.GasBill)
	order := make([]string, 0)
	for _, bill := range bills {
		t := bill.Time
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := buckets[t]; !ok {
			order = append(order, t)
		}
		buckets[t] = append(buckets[t], bill)
	}

	grouped := make([]dto.GroupedGasBills, 0, len(order))
	for _, t := range order {
		grouped = append(grouped, dto.GroupedGasBills{Time: t, Bills: buckets[t]})
	}
	return grouped, nil
}

// Update aplica un parche sobre una factura existente.
func (uc *GasBillUseCase) Update(ctx context.Context, id string, in dto.UpdateGasBillRequest) (*entity.GasBill, error) {
	existing, err := uc.bills.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	if in.M3 != nil && *in.M3 <= 0 {
		return nil, fmt.Errorf("%w: m3 debe ser mayor que cero", domain.ErrInvalidGasBillData)
	}
	if in.IDMember != nil && *in.IDMember == "" {
		return nil, fmt.Errorf("%w: idMember no puede quedar vacío", domain.ErrInvalidGasBillData)
	}
	if in.Time != nil && *in.Time == "" {
		return nil, fmt.Errorf("%w: time no puede quedar vacío", domain.ErrInvalidGasBillData)
	}

	// Si cambia el miembro o el periodo, el par resultante no puede chocar
	// con otra factura existente.
	if in.IDMember != nil || in.Time != nil {
		idMember := existing.IDMember
		if in.IDMember != nil {
			idMember = *in.IDMember
		}
		billTime := existing.Time
		if in.Time != nil {
			billTime = *in.Time
		}
		dup, err := uc.bills.FindByTimeAndMember(ctx, billTime, idMember)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, fmt.Errorf("%w: ya existe una factura del miembro %s para %s",
				domain.ErrInvalidGasBillData, idMember, billTime)
		}
	}

	return uc.bills.Update(ctx, id, repository.GasBillPatch{
		IDMember: in.IDMember,
		Time:     in.Time,
		M3:       in.M3,
		URLPhoto: in.URLPhoto,
	})
}

// Delete elimina una factura; confirma la existencia antes de borrar.
func (uc *GasBillUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.bills.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrGasBillNotFound, id)
	}
	return uc.bills.Delete(ctx, id)
}
