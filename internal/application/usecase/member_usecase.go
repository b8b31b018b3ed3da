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

// MemberUseCase aplica reglas de negocio para miembros. El serial del
// medidor es único a nivel global entre miembros.
type MemberUseCase struct {
	repo repository.MemberRepository
}

// NewMemberUseCase construye el caso de uso con el puerto de persistencia.
func NewMemberUseCase(repo repository.MemberRepository) *MemberUseCase {
	return &MemberUseCase{repo: repo}
}

// Create valida y persiste un miembro nuevo. Rechaza seriales de medidor
// duplicados antes de tocar la persistencia.
func (uc *MemberUseCase) Create(ctx context.Context, in dto.CreateMemberRequest) (*entity.Member, error) {
	if in.IDClient == "" || in.Name == "" || in.MeterSerial == "" {
		return nil, fmt.Errorf("%w: idClient, name y meterSerial son requeridos", domain.ErrInvalidMemberData)
	}
	if !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido %q", domain.ErrInvalidMemberData, in.Email)
	}

	existing, err := uc.repo.FindByMeterSerial(ctx, in.MeterSerial)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateMeterSerial, in.MeterSerial)
	}

	now := time.Now()
	member := &entity.Member{
		ID:          uuid.New().String(),
		IDClient:    in.IDClient,
		Name:        in.Name,
		Lastname:    in.Lastname,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		MeterSerial: in.MeterSerial,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return uc.repo.Create(ctx, member)
}

// GetByID obtiene un miembro por ID.
func (uc *MemberUseCase) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	member, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	return member, nil
}

// GetAll lista todos los miembros.
func (uc *MemberUseCase) GetAll(ctx context.Context) ([]*entity.Member, error) {
	return uc.repo.FindAll(ctx)
}

// GetAllByClientID lista los miembros asociados a un cliente.
func (uc *MemberUseCase) GetAllByClientID(ctx context.Context, clientID string) ([]*entity.Member, error) {
	return uc.repo.FindAllByClientID(ctx, clientID)
}

// Update aplica un parche sobre un miembro existente. Si cambia el serial
// del medidor se vuelve a verificar la unicidad.
func (uc *MemberUseCase) Update(ctx context.Context, id string, in dto.UpdateMemberRequest) (*entity.Member, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido %q", domain.ErrInvalidMemberData, *in.Email)
	}
	if in.MeterSerial != nil && *in.MeterSerial != existing.MeterSerial {
		dup, err := uc.repo.FindByMeterSerial(ctx, *in.MeterSerial)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateMeterSerial, *in.MeterSerial)
		}
	}

	return uc.repo.Update(ctx, id, repository.MemberPatch{
		Name:        in.Name,
		Lastname:    in.Lastname,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		MeterSerial: in.MeterSerial,
		Active:      in.Active,
	})
}

// Delete elimina un miembro; confirma la existencia antes de borrar.
func (uc *MemberUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrMemberNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}
