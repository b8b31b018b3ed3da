package dto

// CreateGasCylinderRefillRequest cuerpo de POST /gas-cylinder-refills.
type CreateGasCylinderRefillRequest struct {
	IDGasCylinder     string  `json:"idGasCylinder"`
	FillingPercentage float64 `json:"fillingPercentage"`
	FillingTime       string  `json:"fillingTime"`
	URLVoucher        string  `json:"urlVoucher"`
}

// UpdateGasCylinderRefillRequest parche de PUT /gas-cylinder-refills/:id.
type UpdateGasCylinderRefillRequest struct {
	FillingPercentage *float64 `json:"fillingPercentage"`
	FillingTime       *string  `json:"fillingTime"`
	URLVoucher        *string  `json:"urlVoucher"`
}
