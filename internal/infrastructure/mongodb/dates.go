package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxInSize tamaño máximo de una cláusula "in" del almacén; las consultas
// con más IDs se trocean en bloques de este tamaño.
const maxInSize = 10

// chunkIDs trocea la lista de IDs en bloques de a lo sumo maxInSize.
func chunkIDs(ids []string) [][]string {
	var chunks [][]string
	for i := 0; i < len(ids); i += maxInSize {
		end := i + maxInSize
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[i:end])
	}
	return chunks
}

// decodeDate normaliza el valor de fecha tal como viene del documento:
//   - string ISO-8601: se parsea tal cual
//   - subdocumento {seconds, nanoseconds}: seconds*1000 + nanoseconds/1e6 ms
//   - datetime nativo del almacén: conversión directa
//   - nulo/ausente: hora actual
//   - cualquier otra cosa: se stringifica e intenta parsear; si falla, hora actual
func decodeDate(v interface{}) time.Time {
	switch d := v.(type) {
	case string:
		return parseOrNow(d)
	case primitive.DateTime:
		return d.Time()
	case primitive.M:
		return decodeSecondsPair(d)
	case map[string]interface{}:
		return decodeSecondsPair(d)
	case time.Time:
		return d
	case nil:
		return time.Now()
	default:
		return parseOrNow(fmt.Sprintf("%v", v))
	}
}

func decodeSecondsPair(m map[string]interface{}) time.Time {
	sec, okS := asInt64(m["seconds"])
	if !okS {
		sec, okS = asInt64(m["_seconds"])
	}
	ns, okN := asInt64(m["nanoseconds"])
	if !okN {
		ns, okN = asInt64(m["_nanoseconds"])
	}
	if !okS {
		return time.Now()
	}
	if !okN {
		ns = 0
	}
	ms := sec*1000 + ns/1e6
	return time.UnixMilli(ms)
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func parseOrNow(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Now()
}

// encodeDate serializa las fechas de salida siempre como string ISO-8601.
// El almacén puede contener datetimes nativos escritos por otras rutas;
// decodeDate los acepta igual.
func encodeDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
