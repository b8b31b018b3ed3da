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

// ClientUseCase aplica reglas de negocio para clientes y sus cilindros.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo. Los cilindros reciben IDs
// generados aquí.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*entity.Client, error) {
	if len(in.Name) < 3 {
		return nil, fmt.Errorf("%w: el nombre debe tener al menos 3 caracteres", domain.ErrInvalidClientData)
	}
	if !entity.ValidClientType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de cliente desconocido %q", domain.ErrInvalidClientData, in.Type)
	}
	if !entity.ValidMembership(in.Membership) {
		return nil, fmt.Errorf("%w: membresía desconocida %q", domain.ErrInvalidClientData, in.Membership)
	}

	cylinders := make([]entity.GasCylinder, 0, len(in.GasCylinders))
	for _, gc := range in.GasCylinders {
		if gc.GlMax < 0 {
			return nil, fmt.Errorf("%w: glMax no puede ser negativo", domain.ErrInvalidClientData)
		}
		cylinders = append(cylinders, entity.GasCylinder{
			ID:      uuid.New().String(),
			GlMax:   gc.GlMax,
			GlToLts: gc.GlToLts,
		})
	}

	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Agent:        entity.Agent{Name: in.Agent.Name, ContactNumber: in.Agent.ContactNumber},
		Active:       in.Active,
		Phone:        in.Phone,
		Type:         in.Type,
		Membership:   in.Membership,
		GasCylinders: cylinders,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Save(ctx, client)
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	return client, nil
}

// GetAll lista todos los clientes.
func (uc *ClientUseCase) GetAll(ctx context.Context) ([]*entity.Client, error) {
	return uc.repo.FindAll(ctx)
}

// Update aplica un parche sobre un cliente existente. Solo los campos
// presentes sobrescriben; la lista de cilindros, si viene, reemplaza la
// actual conservando los IDs recibidos.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*entity.Client, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	if in.Name != nil && len(*in.Name) < 3 {
		return nil, fmt.Errorf("%w: el nombre debe tener al menos 3 caracteres", domain.ErrInvalidClientData)
	}
	if in.Type != nil && !entity.ValidClientType(*in.Type) {
		return nil, fmt.Errorf("%w: tipo de cliente desconocido %q", domain.ErrInvalidClientData, *in.Type)
	}
	if in.Membership != nil && !entity.ValidMembership(*in.Membership) {
		return nil, fmt.Errorf("%w: membresía desconocida %q", domain.ErrInvalidClientData, *in.Membership)
	}

	patch := repository.ClientPatch{
		Name:         in.Name,
		Active:       in.Active,
		Phone:        in.Phone,
		Type:         in.Type,
		Membership:   in.Membership,
		GasCylinders: in.GasCylinders,
	}
	if in.Agent != nil {
		patch.Agent = &entity.Agent{Name: in.Agent.Name, ContactNumber: in.Agent.ContactNumber}
	}
	return uc.repo.Update(ctx, id, patch)
}

// Delete elimina un cliente; confirma la existencia antes de borrar.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", domain.ErrClientNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}
