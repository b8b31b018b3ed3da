package entity

import "time"

// Member representa un miembro asociado a un cliente; es el titular del
// medidor de gas (MeterSerial único a nivel global).
type Member struct {
	ID          string    `json:"id"`
	IDClient    string    `json:"idClient"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	MeterSerial string    `json:"meterSerial"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WithName devuelve una copia con el nombre cambiado.
func (m Member) WithName(name string) Member {
	m.Name = name
	m.UpdatedAt = time.Now()
	return m
}

// WithLastname devuelve una copia con el apellido cambiado.
func (m Member) WithLastname(lastname string) Member {
	m.Lastname = lastname
	m.UpdatedAt = time.Now()
	return m
}

// WithEmail devuelve una copia con el email cambiado.
func (m Member) WithEmail(email string) Member {
	m.Email = email
	m.UpdatedAt = time.Now()
	return m
}

// WithPhone devuelve una copia con el teléfono cambiado.
func (m Member) WithPhone(phone string) Member {
	m.Phone = phone
	m.UpdatedAt = time.Now()
	return m
}

// WithAddress devuelve una copia con la dirección cambiada.
func (m Member) WithAddress(address string) Member {
	m.Address = address
	m.UpdatedAt = time.Now()
	return m
}

// WithMeterSerial devuelve una copia con el serial del medidor cambiado.
func (m Member) WithMeterSerial(meterSerial string) Member {
	m.MeterSerial = meterSerial
	m.UpdatedAt = time.Now()
	return m
}

// WithActive devuelve una copia con el estado activo cambiado.
func (m Member) WithActive(active bool) Member {
	m.Active = active
	m.UpdatedAt = time.Now()
	return m
}
