package dto

import "github.com/jhoicas/frontino-api/internal/domain/entity"

// AgentRequest datos del agente de contacto.
type AgentRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber"`
}

// GasCylinderRequest cilindro de gas sin ID (el ID lo genera el caso de uso).
type GasCylinderRequest struct {
	GlMax   float64 `json:"glMax"`
	GlToLts float64 `json:"glToLts"`
}

// CreateClientRequest cuerpo de POST /clients.
type CreateClientRequest struct {
	Name         string               `json:"name"`
	Agent        AgentRequest         `json:"agent"`
	Active       bool                 `json:"active"`
	Phone        string               `json:"phone"`
	Type         string               `json:"type"`
	Membership   string               `json:"membership"`
	GasCylinders []GasCylinderRequest `json:"gasCylinders"`
}

// UpdateClientRequest parche de PUT /clients/:id: los campos presentes y no
// nulos sobrescriben, los ausentes quedan intactos. Los cilindros, si
// vienen, reemplazan la lista completa conservando sus IDs.
type UpdateClientRequest struct {
	Name         *string               `json:"name"`
	Agent        *AgentRequest         `json:"agent"`
	Active       *bool                 `json:"active"`
	Phone        *string               `json:"phone"`
	Type         *string               `json:"type"`
	Membership   *string               `json:"membership"`
	GasCylinders *[]entity.GasCylinder `json:"gasCylinders"`
}
