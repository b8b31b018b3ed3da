package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// ClientPatch actualización parcial de Client: los campos no nulos
// sobrescriben, los nulos se dejan intactos.
type ClientPatch struct {
	Name         *string
	Agent        *entity.Agent
	Active       *bool
	Phone        *string
	Type         *string
	Membership   *string
	GasCylinders *[]entity.GasCylinder
}

// ClientRepository define el puerto de persistencia para Client.
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia; el error se
// reserva para fallos reales del almacén.
type ClientRepository interface {
	Save(ctx context.Context, client *entity.Client) (*entity.Client, error)
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]*entity.Client, error)
	Update(ctx context.Context, id string, patch ClientPatch) (*entity.Client, error)
	Delete(ctx context.Context, id string) error
}
