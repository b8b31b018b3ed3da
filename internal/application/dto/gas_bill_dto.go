package dto

import "github.com/jhoicas/frontino-api/internal/domain/entity"

// CreateGasBillRequest cuerpo de POST /gas-bills.
type CreateGasBillRequest struct {
	IDMember string  `json:"idMember"`
	Time     string  `json:"time"`
	M3       float64 `json:"m3"`
	URLPhoto string  `json:"urlPhoto"`
}

// UpdateGasBillRequest parche de PUT /gas-bills/:id.
type UpdateGasBillRequest struct {
	IDMember *string  `json:"idMember"`
	Time     *string  `json:"time"`
	M3       *float64 `json:"m3"`
	URLPhoto *string  `json:"urlPhoto"`
}

// GroupedGasBills facturas agrupadas por periodo idéntico.
type GroupedGasBills struct {
	Time  string            `json:"time"`
	Bills []*entity.GasBill `json:"bills"`
}
