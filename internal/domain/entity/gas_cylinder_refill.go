package entity

import "time"

// GasCylinderRefill registra una recarga de un cilindro de gas.
type GasCylinderRefill struct {
	ID                string    `json:"id"`
	IDGasCylinder     string    `json:"idGasCylinder"`
	FillingPercentage float64   `json:"fillingPercentage"` // 0 a 100
	FillingTime       string    `json:"fillingTime"`
	URLVoucher        string    `json:"urlVoucher,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// WithFillingPercentage devuelve una copia con el porcentaje de llenado cambiado.
func (r GasCylinderRefill) WithFillingPercentage(p float64) GasCylinderRefill {
	r.FillingPercentage = p
	r.UpdatedAt = time.Now()
	return r
}

// WithFillingTime devuelve una copia con la hora de llenado cambiada.
func (r GasCylinderRefill) WithFillingTime(t string) GasCylinderRefill {
	r.FillingTime = t
	r.UpdatedAt = time.Now()
	return r
}

// WithURLVoucher devuelve una copia con la URL del comprobante cambiada.
func (r GasCylinderRefill) WithURLVoucher(url string) GasCylinderRefill {
	r.URLVoucher = url
	r.UpdatedAt = time.Now()
	return r
}
