package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/domain"
)

// respond escribe la envoltura uniforme de éxito {status, message, data}.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Success(status, message, data))
}

// respondError escribe la envoltura de error con data en null.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Error(status, message))
}

// statusFor clasifica un error de caso de uso en un código HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrGasBillNotFound),
		errors.Is(err, domain.ErrGasCylinderRefillNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAuthNotFound),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrFileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateMeterSerial),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidClientData),
		errors.Is(err, domain.ErrInvalidMemberData),
		errors.Is(err, domain.ErrInvalidGasBillData),
		errors.Is(err, domain.ErrInvalidGasCylinderRefillData),
		errors.Is(err, domain.ErrInvalidUserData):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// failWith clasifica el error y escribe la envoltura de error.
func failWith(c *fiber.Ctx, err error) error {
	return respondError(c, statusFor(err), err.Error())
}
