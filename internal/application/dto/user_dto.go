package dto

// CreateUserRequest cuerpo de POST /users. Password llega en claro y se
// hashea en el caso de uso antes de persistir.
type CreateUserRequest struct {
	IDAssociatedAccounts []string `json:"idAssociatedAccounts"`
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	Rol                  string   `json:"rol"`
	Active               *bool    `json:"active"`
}

// UpdateUserRequest parche de PUT /users/:id.
type UpdateUserRequest struct {
	IDAssociatedAccounts *[]string `json:"idAssociatedAccounts"`
	Email                *string   `json:"email"`
	Password             *string   `json:"password"`
	Rol                  *string   `json:"rol"`
	Active               *bool     `json:"active"`
}
