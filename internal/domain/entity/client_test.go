package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/internal/domain/entity"
)

// baseClient devuelve un cliente con UpdatedAt en el pasado para poder
// verificar que los mutadores lo avanzan.
func baseClient() entity.Client {
	past := time.Now().Add(-time.Hour)
	return entity.Client{
		ID:         "c-1",
		Name:       "Cooperativa Frontino",
		Agent:      entity.Agent{Name: "Ana", ContactNumber: "300111"},
		Active:     true,
		Phone:      "300222",
		Type:       entity.ClientTypeResidential,
		Membership: entity.MembershipBasic,
		GasCylinders: []entity.GasCylinder{
			{ID: "cyl-1", GlMax: 100, GlToLts: 3.785},
		},
		CreatedAt: past,
		UpdatedAt: past,
	}
}

// Los mutadores devuelven una copia: el original no cambia y UpdatedAt avanza.
func TestClient_WithName_NoMutaElOriginal(t *testing.T) {
	original := baseClient()
	before := original.UpdatedAt

	modified := original.WithName("Cooperativa Nueva")

	assert.Equal(t, "Cooperativa Frontino", original.Name)
	assert.Equal(t, before, original.UpdatedAt)
	assert.Equal(t, "Cooperativa Nueva", modified.Name)
	assert.True(t, modified.UpdatedAt.After(before))
}

func TestClient_WithType_SoloCambiaElCampoObjetivo(t *testing.T) {
	original := baseClient()

	modified := original.WithType(entity.ClientTypeIndustrial)

	assert.Equal(t, entity.ClientTypeIndustrial, modified.Type)
	assert.Equal(t, original.Name, modified.Name)
	assert.Equal(t, original.Membership, modified.Membership)
	assert.Equal(t, original.Phone, modified.Phone)
	assert.Equal(t, original.CreatedAt, modified.CreatedAt)
}

func TestClient_AddGasCylinder_AgregaAlFinal(t *testing.T) {
	original := baseClient()

	modified := original.AddGasCylinder(entity.GasCylinder{ID: "cyl-2", GlMax: 50, GlToLts: 3.785})

	require.Len(t, modified.GasCylinders, 2)
	assert.Equal(t, "cyl-2", modified.GasCylinders[1].ID)
	// La lista del original no se ve afectada.
	assert.Len(t, original.GasCylinders, 1)
}

func TestClient_RemoveGasCylinder_IDInexistente(t *testing.T) {
	original := baseClient()
	before := original.UpdatedAt

	modified := original.RemoveGasCylinder("no-existe")

	// La lista queda igual pero UpdatedAt avanza de todos modos.
	assert.Len(t, modified.GasCylinders, 1)
	assert.True(t, modified.UpdatedAt.After(before))
}

func TestClient_RemoveGasCylinder_Elimina(t *testing.T) {
	original := baseClient().AddGasCylinder(entity.GasCylinder{ID: "cyl-2", GlMax: 50})

	modified := original.RemoveGasCylinder("cyl-1")

	require.Len(t, modified.GasCylinders, 1)
	assert.Equal(t, "cyl-2", modified.GasCylinders[0].ID)
}

func TestValidClientType(t *testing.T) {
	assert.True(t, entity.ValidClientType(entity.ClientTypeResidential))
	assert.True(t, entity.ValidClientType(entity.ClientTypeCommercial))
	assert.True(t, entity.ValidClientType(entity.ClientTypeIndustrial))
	assert.False(t, entity.ValidClientType("residential"))
	assert.False(t, entity.ValidClientType(""))
}

func TestValidMembership(t *testing.T) {
	assert.True(t, entity.ValidMembership(entity.MembershipPremium))
	assert.False(t, entity.ValidMembership("GOLD"))
}
