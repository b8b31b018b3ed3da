package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
	RoleViewer   = "VIEWER"
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperator || r == RoleViewer
}

// User representa un usuario del sistema con acceso a la API.
type User struct {
	ID                   string    `json:"id"`
	IDAssociatedAccounts []string  `json:"idAssociatedAccounts"`
	Email                string    `json:"email"` // único, comparación sensible a mayúsculas
	Password             string    `json:"-"`     // hash bcrypt, nunca en claro después de persistir
	Rol                  string    `json:"rol"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// WithIDAssociatedAccounts devuelve una copia con las cuentas asociadas cambiadas.
func (u User) WithIDAssociatedAccounts(ids []string) User {
	u.IDAssociatedAccounts = ids
	u.UpdatedAt = time.Now()
	return u
}

// WithEmail devuelve una copia con el email cambiado.
func (u User) WithEmail(email string) User {
	u.Email = email
	u.UpdatedAt = time.Now()
	return u
}

// WithPassword devuelve una copia con el hash de contraseña cambiado.
func (u User) WithPassword(hash string) User {
	u.Password = hash
	u.UpdatedAt = time.Now()
	return u
}

// WithRol devuelve una copia con el rol cambiado.
func (u User) WithRol(rol string) User {
	u.Rol = rol
	u.UpdatedAt = time.Now()
	return u
}

// WithActive devuelve una copia con el estado activo cambiado.
func (u User) WithActive(active bool) User {
	u.Active = active
	u.UpdatedAt = time.Now()
	return u
}
