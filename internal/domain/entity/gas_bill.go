package entity

import "time"

// GasBill es la factura de consumo de gas de un miembro para un periodo.
// Se espera a lo sumo una factura por par (IDMember, Time); la unicidad es
// una convención del código llamante, no una garantía atómica del almacén.
type GasBill struct {
	ID        string    `json:"id"`
	IDMember  string    `json:"idMember"`
	Time      string    `json:"time"` // periodo de facturación (cadena de fecha)
	M3        float64   `json:"m3"`   // consumo en metros cúbicos, > 0
	URLPhoto  string    `json:"urlPhoto,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithM3 devuelve una copia con el consumo cambiado.
func (b GasBill) WithM3(m3 float64) GasBill {
	b.M3 = m3
	b.UpdatedAt = time.Now()
	return b
}

// WithURLPhoto devuelve una copia con la URL de la foto del recibo cambiada.
func (b GasBill) WithURLPhoto(urlPhoto string) GasBill {
	b.URLPhoto = urlPhoto
	b.UpdatedAt = time.Now()
	return b
}
