package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 15 IDs deben producir exactamente dos bloques: 10 y 5.
func TestChunkIDs_QuinceEnDosBloques(t *testing.T) {
	ids := make([]string, 15)
	for i := range ids {
		ids[i] = "id"
	}

	chunks := chunkIDs(ids)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 10)
	assert.Len(t, chunks[1], 5)
}

func TestChunkIDs_Bordes(t *testing.T) {
	assert.Nil(t, chunkIDs(nil))
	assert.Nil(t, chunkIDs([]string{}))

	exact := chunkIDs(make([]string, 10))
	require.Len(t, exact, 1)
	assert.Len(t, exact[0], 10)

	one := chunkIDs(make([]string, 11))
	require.Len(t, one, 2)
	assert.Len(t, one[1], 1)
}

func TestDecodeDate_StringISO(t *testing.T) {
	got := decodeDate("2024-01-15T10:30:00Z")
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), got.UTC())
}

// Subdocumento {seconds, nanoseconds}: sec*1000 + ns/1e6 milisegundos.
func TestDecodeDate_ParSegundosNanosegundos(t *testing.T) {
	got := decodeDate(primitive.M{"seconds": int64(1_700_000_000), "nanoseconds": int64(500_000_000)})
	assert.Equal(t, int64(1_700_000_000_500), got.UnixMilli())

	// Variante con prefijo de guion bajo.
	got = decodeDate(map[string]interface{}{"_seconds": int64(1_700_000_000), "_nanoseconds": int64(0)})
	assert.Equal(t, int64(1_700_000_000_000), got.UnixMilli())
}

func TestDecodeDate_DatetimeNativo(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got := decodeDate(primitive.NewDateTimeFromTime(want))
	assert.Equal(t, want, got.UTC())
}

// Nulo y basura no parseable caen a la hora actual en vez de fallar.
func TestDecodeDate_NuloYBasura(t *testing.T) {
	before := time.Now().Add(-time.Second)

	fromNil := decodeDate(nil)
	fromJunk := decodeDate(12345)

	assert.True(t, fromNil.After(before))
	assert.True(t, fromJunk.After(before))
}

func TestEncodeDate_UTCISO(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2024, 1, 15, 5, 0, 0, 0, loc)

	out := encodeDate(in)

	assert.Equal(t, "2024-01-15T10:00:00Z", out)
	// Ida y vuelta sin pérdida.
	assert.Equal(t, in.UTC(), decodeDate(out).UTC())
}
