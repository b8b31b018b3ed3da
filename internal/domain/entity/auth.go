package entity

import "time"

// Auth representa una sesión emitida: el vínculo entre un usuario y un
// token JWT vigente. El token cambia en un refresh; el registro se conserva.
type Auth struct {
	ID        string    `json:"id"`
	IDUser    string    `json:"idUser"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithToken devuelve una copia con el token reemplazado (refresh).
func (a Auth) WithToken(token string) Auth {
	a.Token = token
	return a
}
