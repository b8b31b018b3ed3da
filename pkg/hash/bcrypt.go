package hash

import "golang.org/x/crypto/bcrypt"

// PasswordHasher puerto de hashing de contraseñas, intercambiable en tests.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

// Bcrypt implementación con golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher. Con cost <= 0 usa bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash genera el hash bcrypt de la contraseña en claro.
func (b *Bcrypt) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compare indica si la contraseña en claro corresponde al hash.
func (b *Bcrypt) Compare(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
