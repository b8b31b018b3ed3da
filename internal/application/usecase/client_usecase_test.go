package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/domain/entity"
	"github.com/jhoicas/frontino-api/internal/infrastructure/memory"
)

func validClient() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:       "Cooperativa Frontino",
		Agent:      dto.AgentRequest{Name: "Ana", ContactNumber: "300111"},
		Active:     true,
		Phone:      "300222",
		Type:       entity.ClientTypeResidential,
		Membership: entity.MembershipBasic,
		GasCylinders: []dto.GasCylinderRequest{
			{GlMax: 100, GlToLts: 3.785},
			{GlMax: 50, GlToLts: 3.785},
		},
	}
}

// Los cilindros del create reciben IDs generados por el caso de uso.
func TestClientCreate_GeneraIDsDeCilindros(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())

	client, err := uc.Create(context.Background(), validClient())

	require.NoError(t, err)
	require.Len(t, client.GasCylinders, 2)
	assert.NotEmpty(t, client.GasCylinders[0].ID)
	assert.NotEmpty(t, client.GasCylinders[1].ID)
	assert.NotEqual(t, client.GasCylinders[0].ID, client.GasCylinders[1].ID)
	assert.Equal(t, client.CreatedAt, client.UpdatedAt)
}

func TestClientCreate_Validaciones(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())
	ctx := context.Background()

	in := validClient()
	in.Name = "ab"
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidClientData)

	in = validClient()
	in.Type = "HOGAR"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidClientData)

	in = validClient()
	in.Membership = "GOLD"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidClientData)

	in = validClient()
	in.GasCylinders[0].GlMax = -1
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidClientData)
}

// El parche solo sobrescribe los campos presentes.
func TestClientUpdate_ParcheParcial(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())
	ctx := context.Background()

	client, err := uc.Create(ctx, validClient())
	require.NoError(t, err)

	phone := "311999"
	updated, err := uc.Update(ctx, client.ID, dto.UpdateClientRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "311999", updated.Phone)
	assert.Equal(t, client.Name, updated.Name)
	assert.Equal(t, client.Membership, updated.Membership)
	assert.Len(t, updated.GasCylinders, 2)
	assert.True(t, updated.UpdatedAt.After(client.UpdatedAt) || updated.UpdatedAt.Equal(client.UpdatedAt))
}

// La lista de cilindros, si viene en el parche, reemplaza la actual
// conservando los IDs recibidos.
func TestClientUpdate_ReemplazaCilindros(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())
	ctx := context.Background()

	client, err := uc.Create(ctx, validClient())
	require.NoError(t, err)

	replacement := []entity.GasCylinder{{ID: "cyl-x", GlMax: 200, GlToLts: 3.785}}
	updated, err := uc.Update(ctx, client.ID, dto.UpdateClientRequest{GasCylinders: &replacement})
	require.NoError(t, err)

	require.Len(t, updated.GasCylinders, 1)
	assert.Equal(t, "cyl-x", updated.GasCylinders[0].ID)
}

func TestClientUpdate_NoExistente(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())

	name := "Nombre Nuevo"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientDelete_NoExistente(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientGetByID_NoExistente(t *testing.T) {
	uc := usecase.NewClientUseCase(memory.NewClientRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
