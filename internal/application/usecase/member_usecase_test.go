package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
	"github.com/jhoicas/frontino-api/internal/domain"
	"github.com/jhoicas/frontino-api/internal/infrastructure/memory"
)

func validMember() dto.CreateMemberRequest {
	return dto.CreateMemberRequest{
		IDClient:    "client-1",
		Name:        "Pedro",
		Lastname:    "Gómez",
		Email:       "pedro@example.com",
		Phone:       "300123",
		Address:     "Calle 1",
		MeterSerial: "MTR-001",
		Active:      true,
	}
}

func TestMemberCreate_OK(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())

	member, err := uc.Create(context.Background(), validMember())

	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "MTR-001", member.MeterSerial)
	assert.Equal(t, member.CreatedAt, member.UpdatedAt)
}

// Serial de medidor duplicado: el segundo create se rechaza sin persistir.
func TestMemberCreate_SerialDuplicado(t *testing.T) {
	repo := memory.NewMemberRepo()
	uc := usecase.NewMemberUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, validMember())
	require.NoError(t, err)

	in := validMember()
	in.Name = "Otro"
	_, err = uc.Create(ctx, in)
	require.ErrorIs(t, err, domain.ErrDuplicateMeterSerial)

	// Solo el primero quedó persistido.
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemberCreate_DatosInvalidos(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())
	ctx := context.Background()

	in := validMember()
	in.MeterSerial = ""
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidMemberData)

	in = validMember()
	in.Email = "sin-arroba"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidMemberData)
}

// Al cambiar el serial en un update se re-verifica la unicidad.
func TestMemberUpdate_SerialDuplicado(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())
	ctx := context.Background()

	first, err := uc.Create(ctx, validMember())
	require.NoError(t, err)

	second := validMember()
	second.MeterSerial = "MTR-002"
	other, err := uc.Create(ctx, second)
	require.NoError(t, err)

	serial := first.MeterSerial
	_, err = uc.Update(ctx, other.ID, dto.UpdateMemberRequest{MeterSerial: &serial})
	assert.ErrorIs(t, err, domain.ErrDuplicateMeterSerial)
}

// Conservar el propio serial en el parche no cuenta como duplicado.
func TestMemberUpdate_MismoSerialPropio(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())
	ctx := context.Background()

	member, err := uc.Create(ctx, validMember())
	require.NoError(t, err)

	serial := member.MeterSerial
	name := "Pedro Actualizado"
	updated, err := uc.Update(ctx, member.ID, dto.UpdateMemberRequest{MeterSerial: &serial, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pedro Actualizado", updated.Name)
	assert.Equal(t, serial, updated.MeterSerial)
}

func TestMemberDelete_NoExistente(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberGetAllByClientID(t *testing.T) {
	uc := usecase.NewMemberUseCase(memory.NewMemberRepo())
	ctx := context.Background()

	first := validMember()
	_, err := uc.Create(ctx, first)
	require.NoError(t, err)

	second := validMember()
	second.IDClient = "client-2"
	second.MeterSerial = "MTR-002"
	_, err = uc.Create(ctx, second)
	require.NoError(t, err)

	members, err := uc.GetAllByClientID(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "client-1", members[0].IDClient)
}
