package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/domain/repository"
)

// GasCylinderRefillUseCase aplica reglas de negocio para recargas de cilindros.
type GasCylinderRefillUseCase struct {
	repo repository.GasCylinderRefillRepository
}

// NewGasCylinderRefillUseCase construye el caso de uso con el puerto de persistencia.
func NewGasCylinderRefillUseCase(repo repository.GasCylinderRefillRepository) *GasCylinderRefillUseCase {
	return &GasCylinderRefillUseCase{repo: repo}
}

// Create valida y persiste una recarga nueva.
func (uc *GasCylinderRefillUseCase) Create(ctx context.Context, in dto.CreateGasCylinderRefillRequest) (*entity.GasCylinderRefill, error) {
	if in.IDGasCylinder == "" {
		return nil, fmt.Errorf("%w: idGasCylinder es requerido", domain.ErrInvalidGasCylinderRefillData)
	}
	if in.FillingPercentage < 0 || in.FillingPercentage > 100 {
		return nil, fmt.Errorf("%w: fillingPercentage debe estar entre 0 y 100", domain.ErrInvalidGasCylinderRefillData)
	}

	now := time.Now()
	refill := &entity.GasCylinderRefill{
		ID:                uuid.New().String(),
		IDGasCylinder:     in.IDGasCylinder,
		FillingPercentage: in.FillingPercentage,
		FillingTime:       in.FillingTime,
		URLVoucher:        in.URLVoucher,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return uc.repo.Create(ctx, refill)
}

// GetByID obtiene una recarga por ID.
func (uc *GasCylinderRefillUseCase) GetByID(ctx context.Context, id string) (*entity.GasCylinderRefill, error) {
	refill, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if refill == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	return refill, nil
}

// GetAll lista todas las recargas.
func (uc *GasCylinderRefillUseCase) GetAll(ctx context.Context) ([]*entity.GasCylinderRefill, error) {
	return uc.repo.FindAll(ctx)
}

// GetAllByCylinderID lista las recargas de un cilindro.
func (uc *GasCylinderRefillUseCase) GetAllByCylinderID(ctx context.Context, cylinderID string) ([]*entity.GasCylinderRefill, error) {
	return uc.repo.FindAllByCylinderID(ctx, cylinderID)
}

// Update aplica un parche sobre una recarga existente.
func (uc *GasCylinderRefillUseCase) Update(ctx context.Context, id string, in dto.UpdateGasCylinderRefillRequest) (*entity.GasCylinderRefill, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	if in.FillingPercentage != nil && (*in.FillingPercentage < 0 || *in.FillingPercentage > 100) {
		return nil, fmt.Errorf("%w: fillingPercentage debe estar entre 0 y 100", domain.ErrInvalidGasCylinderRefillData)
	}
	return uc.repo.Update(ctx, id, repository.GasCylinderRefillPatch{
		FillingPercentage: in.FillingPercentage,
		FillingTime:       in.FillingTime,
		URLVoucher:        in.URLVoucher,
	})
}

// Delete elimina una recarga; confirma la existencia antes de borrar.
func (uc *GasCylinderRefillUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrGasCylinderRefillNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}
