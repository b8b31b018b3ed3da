package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// GasBillPatch actualización parcial de GasBill. El miembro y el periodo
// también se pueden reasignar; el caso de uso revalida el duplicado
// (miembro, periodo) cuando cambia alguno de los dos.
type GasBillPatch struct {
	IDMember *string
	Time     *string
	M3       *float64
	URLPhoto *string
}

// GasBillRepository define el puerto de persistencia para GasBill.
type GasBillRepository interface {
	Save(ctx context.Context, bill *entity.GasBill) (*entity.GasBill, error)
	FindByID(ctx context.Context, id string) (*entity.GasBill, error)
	FindAll(ctx context.Context) ([]*entity.GasBill, error)
	FindByTimeAndMember(ctx context.Context, time, idMember string) (*entity.GasBill, error)
	// FindInIDsMembers acepta una lista de IDs sin límite; la implementación
	// trocea en consultas "in" del tamaño máximo del almacén y une los
	// resultados sin garantía de orden entre bloques.
	FindInIDsMembers(ctx context.Context, idMembers []string) ([]*entity.GasBill, error)
	Update(ctx context.Context, id string, patch GasBillPatch) (*entity.GasBill, error)
	Delete(ctx context.Context, id string) error
}
