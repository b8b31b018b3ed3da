package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con fmt.Errorf("%w: ...") para adjuntar el ID implicado; los
// handlers clasifican con errors.Is.
var (
	// Fallos de búsqueda.
	ErrClientNotFound            = errors.New("cliente no encontrado")
	ErrMemberNotFound            = errors.New("miembro no encontrado")
	ErrGasBillNotFound           = errors.New("factura de gas no encontrada")
	ErrGasCylinderRefillNotFound = errors.New("recarga de cilindro no encontrada")
	ErrUserNotFound              = errors.New("usuario no encontrado")
	ErrAuthNotFound              = errors.New("autenticación no encontrada")
	ErrTokenNotFound             = errors.New("token no encontrado")
	ErrFileNotFound              = errors.New("archivo no encontrado")

	// Violaciones de unicidad.
	ErrDuplicateMeterSerial = errors.New("el serial del medidor ya está registrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")

	// Datos inválidos en creación/actualización.
	ErrInvalidClientData            = errors.New("datos de cliente inválidos")
	ErrInvalidMemberData            = errors.New("datos de miembro inválidos")
	ErrInvalidGasBillData           = errors.New("datos de factura de gas inválidos")
	ErrInvalidGasCylinderRefillData = errors.New("datos de recarga inválidos")
	ErrInvalidUserData              = errors.New("datos de usuario inválidos")

	// Auth: deliberadamente genérico para no revelar si falló el email o la
	// contraseña. Los errores de infraestructura NO se colapsan en este.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
