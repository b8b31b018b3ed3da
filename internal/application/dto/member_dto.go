package dto

// CreateMemberRequest cuerpo de POST /members.
type CreateMemberRequest struct {
	IDClient    string `json:"idClient"`
	Name        string `json:"name"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	MeterSerial string `json:"meterSerial"`
	Active      bool   `json:"active"`
}

// UpdateMemberRequest parche de PUT /members/:id.
type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Lastname    *string `json:"lastname"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	MeterSerial *string `json:"meterSerial"`
	Active      *bool   `json:"active"`
}
