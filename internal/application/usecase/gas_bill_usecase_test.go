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

func newGasBillFixture(t *testing.T) (*usecase.GasBillUseCase, *usecase.MemberUseCase) {
	t.Helper()
	members := memory.NewMemberRepo()
	bills := memory.NewGasBillRepo()
	return usecase.NewGasBillUseCase(bills, members), usecase.NewMemberUseCase(members)
}

func TestGasBillSave_OK(t *testing.T) {
	uc, _ := newGasBillFixture(t)

	bill, err := uc.Save(context.Background(), dto.CreateGasBillRequest{
		IDMember: "m-1",
		Time:     "2024-01",
		M3:       12.5,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, bill.ID)
	assert.Equal(t, bill.CreatedAt, bill.UpdatedAt)
}

// Segunda factura del mismo miembro para el mismo periodo: rechazada.
func TestGasBillSave_PeriodoDuplicado(t *testing.T) {
	uc, _ := newGasBillFixture(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 12.5})
	require.NoError(t, err)

	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)

	// Mismo periodo, otro miembro: permitido.
	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-2", Time: "2024-01", M3: 9})
	assert.NoError(t, err)
}

func TestGasBillSave_Validaciones(t *testing.T) {
	uc, _ := newGasBillFixture(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "", Time: "2024-01", M3: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)

	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)
}

// GroupByTime agrupa facturas de los miembros del cliente por periodo
// idéntico y descarta los periodos en blanco.
func TestGasBillGroupByTime(t *testing.T) {
	uc, memberUC := newGasBillFixture(t)
	ctx := context.Background()

	mk := func(serial string) string {
		in := validMember()
		in.MeterSerial = serial
		in.Email = serial + "@example.com"
		m, err := memberUC.Create(ctx, in)
		require.NoError(t, err)
		return m.ID
	}
	m1 := mk("MTR-101")
	m2 := mk("MTR-102")

	_, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: m1, Time: "2024-01", M3: 10})
	require.NoError(t, err)
	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: m2, Time: "2024-01", M3: 7})
	require.NoError(t, err)
	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: m1, Time: "2024-02", M3: 11})
	require.NoError(t, err)

	// Factura de un miembro de otro cliente: no debe aparecer.
	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "ajeno", Time: "2024-01", M3: 5})
	require.NoError(t, err)

	grouped, err := uc.GroupByTime(ctx, "client-1")
	require.NoError(t, err)

	require.Len(t, grouped, 2)
	assert.Equal(t, "2024-01", grouped[0].Time)
	assert.Len(t, grouped[0].Bills, 2)
	assert.Equal(t, "2024-02", grouped[1].Time)
	assert.Len(t, grouped[1].Bills, 1)
}

func TestGasBillGroupByTime_SinMiembros(t *testing.T) {
	uc, _ := newGasBillFixture(t)

	grouped, err := uc.GroupByTime(context.Background(), "client-vacio")
	require.NoError(t, err)
	assert.Empty(t, grouped)
}

func TestGasBillFindByTimeAndMember_NoExistente(t *testing.T) {
	uc, _ := newGasBillFixture(t)

	_, err := uc.FindByTimeAndMember(context.Background(), "2024-01", "m-1")
	assert.ErrorIs(t, err, domain.ErrGasBillNotFound)
}

func TestGasBillUpdate_M3Invalido(t *testing.T) {
	uc, _ := newGasBillFixture(t)
	ctx := context.Background()

	bill, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 12.5})
	require.NoError(t, err)

	bad := -3.0
	_, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{M3: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)
}

// El periodo y el miembro de una factura se pueden reasignar con el parche.
func TestGasBillUpdate_ReasignaPeriodoYMiembro(t *testing.T) {
	uc, _ := newGasBillFixture(t)
	ctx := context.Background()

	bill, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 12.5})
	require.NoError(t, err)

	newTime := "2024-02"
	updated, err := uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "2024-02", updated.Time)
	assert.Equal(t, "m-1", updated.IDMember)

	newMember := "m-2"
	updated, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{IDMember: &newMember})
	require.NoError(t, err)
	assert.Equal(t, "m-2", updated.IDMember)
	assert.Equal(t, "2024-02", updated.Time)
}

// Reasignar no puede chocar con la factura de otro miembro/periodo, pero
// repetir el propio par de la factura sí está permitido.
func TestGasBillUpdate_ReasignacionDuplicada(t *testing.T) {
	uc, _ := newGasBillFixture(t)
	ctx := context.Background()

	bill, err := uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-01", M3: 12.5})
	require.NoError(t, err)
	_, err = uc.Save(ctx, dto.CreateGasBillRequest{IDMember: "m-1", Time: "2024-02", M3: 9})
	require.NoError(t, err)

	taken := "2024-02"
	_, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{Time: &taken})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)

	own := "2024-01"
	_, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{Time: &own})
	assert.NoError(t, err)

	empty := ""
	_, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{Time: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)
	_, err = uc.Update(ctx, bill.ID, dto.UpdateGasBillRequest{IDMember: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidGasBillData)
}

func TestGasBillDelete_NoExistente(t *testing.T) {
	uc, _ := newGasBillFixture(t)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrGasBillNotFound)
}
