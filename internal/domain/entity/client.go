package entity

import "time"

// Tipos de cliente válidos.
const (
	ClientTypeResidential = "RESIDENTIAL"
	ClientTypeCommercial  = "COMMERCIAL"
	ClientTypeIndustrial  = "INDUSTRIAL"
)

// Membresías válidas.
const (
	MembershipBasic      = "BASIC"
	MembershipPremium    = "PREMIUM"
	MembershipEnterprise = "ENTERPRISE"
)

// ValidClientType indica si el tipo de cliente es uno de los conocidos.
func ValidClientType(t string) bool {
	return t == ClientTypeResidential || t == ClientTypeCommercial || t == ClientTypeIndustrial
}

// ValidMembership indica si la membresía es una de las conocidas.
func ValidMembership(m string) bool {
	return m == MembershipBasic || m == MembershipPremium || m == MembershipEnterprise
}

// Agent representa el agente de contacto de un cliente.
type Agent struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// GasCylinder es un cilindro de gas de propiedad exclusiva de un Client.
type GasCylinder struct {
	ID      string  `json:"id"`
	GlMax   float64 `json:"glMax"`   // capacidad en galones, >= 0
	GlToLts float64 `json:"glToLts"` // factor de conversión galones -> litros
}

// Client representa un cliente de la distribuidora de gas.
// Los mutadores devuelven una copia con UpdatedAt refrescado; el valor
// original nunca se modifica en sitio.
type Client struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"` // >= 3 caracteres, único por convención
	Agent        Agent         `json:"agent"`
	Active       bool          `json:"active"`
	Phone        string        `json:"phone"`
	Type         string        `json:"type"`
	Membership   string        `json:"membership"`
	GasCylinders []GasCylinder `json:"gasCylinders"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// WithName devuelve una copia con el nombre cambiado.
func (c Client) WithName(name string) Client {
	c.Name = name
	c.UpdatedAt = time.Now()
	return c
}

// WithAgent devuelve una copia con el agente cambiado.
func (c Client) WithAgent(agent Agent) Client {
	c.Agent = agent
	c.UpdatedAt = time.Now()
	return c
}

// WithActive devuelve una copia con el estado activo cambiado.
func (c Client) WithActive(active bool) Client {
	c.Active = active
	c.UpdatedAt = time.Now()
	return c
}

// WithPhone devuelve una copia con el teléfono cambiado.
func (c Client) WithPhone(phone string) Client {
	c.Phone = phone
	c.UpdatedAt = time.Now()
	return c
}

// WithType devuelve una copia con el tipo de cliente cambiado.
func (c Client) WithType(clientType string) Client {
	c.Type = clientType
	c.UpdatedAt = time.Now()
	return c
}

// WithMembership devuelve una copia con la membresía cambiada.
func (c Client) WithMembership(membership string) Client {
	c.Membership = membership
	c.UpdatedAt = time.Now()
	return c
}

// AddGasCylinder devuelve una copia con el cilindro agregado al final de la lista.
func (c Client) AddGasCylinder(cylinder GasCylinder) Client {
	cylinders := make([]GasCylinder, 0, len(c.GasCylinders)+1)
	cylinders = append(cylinders, c.GasCylinders...)
	cylinders = append(cylinders, cylinder)
	c.GasCylinders = cylinders
	c.UpdatedAt = time.Now()
	return c
}

// RemoveGasCylinder devuelve una copia sin el cilindro con el ID indicado.
// Si el ID no existe la lista queda igual, pero UpdatedAt avanza de todos modos.
func (c Client) RemoveGasCylinder(cylinderID string) Client {
	cylinders := make([]GasCylinder, 0, len(c.GasCylinders))
	for _, cyl := range c.GasCylinders {
		if cyl.ID != cylinderID {
			cylinders = append(cylinders, cyl)
		}
	}
	c.GasCylinders = cylinders
	c.UpdatedAt = time.Now()
	return c
}
