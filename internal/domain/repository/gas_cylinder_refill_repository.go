package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// GasCylinderRefillPatch actualización parcial de GasCylinderRefill.
type GasCylinderRefillPatch struct {
	FillingPercentage *float64
	FillingTime       *string
	URLVoucher        *string
}

// GasCylinderRefillRepository define el puerto de persistencia para GasCylinderRefill.
type GasCylinderRefillRepository interface {
	Create(ctx context.Context, refill *entity.GasCylinderRefill) (*entity.GasCylinderRefill, error)
	FindByID(ctx context.Context, id string) (*entity.GasCylinderRefill, error)
	FindAll(ctx context.Context) ([]*entity.GasCylinderRefill, error)
	FindAllByCylinderID(ctx context.Context, cylinderID string) ([]*entity.GasCylinderRefill, error)
	Update(ctx context.Context, id string, patch GasCylinderRefillPatch) (*entity.GasCylinderRefill, error)
	Delete(ctx context.Context, id string) error
}
