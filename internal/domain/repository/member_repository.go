package repository

import (
	"context"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// MemberPatch actualización parcial de Member.
type MemberPatch struct {
	Name        *string
	Lastname    *string
	Email       *string
	Phone       *string
	Address     *string
	MeterSerial *string
	Active      *bool
}

// MemberRepository define el puerto de persistencia para Member.
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	FindByID(ctx context.Context, id string) (*entity.Member, error)
	FindAll(ctx context.Context) ([]*entity.Member, error)
	FindAllByClientID(ctx context.Context, clientID string) ([]*entity.Member, error)
	FindByMeterSerial(ctx context.Context, meterSerial string) (*entity.Member, error)
	Update(ctx context.Context, id string, patch MemberPatch) (*entity.Member, error)
	Delete(ctx context.Context, id string) error
}
