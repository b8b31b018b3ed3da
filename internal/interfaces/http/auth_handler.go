package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/auth"
	"github.com/jhoicas/frontino-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación y sesiones.
// El grupo completo es público: el token recién emitido es justamente lo
// que estas rutas producen.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	session, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "sesión iniciada", session)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.LogoutRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Logout(c.UserContext(), in.Token); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "sesión cerrada", nil)
}

// RefreshToken POST /api/v1/auth/refresh-token
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	session, err := h.uc.RefreshToken(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "token renovado", session)
}

// ResetPassword POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ResetPassword(c.UserContext(), in); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "contraseña actualizada", nil)
}

// CreateAuth POST /api/v1/auth
func (h *AuthHandler) CreateAuth(c *fiber.Ctx) error {
	var in dto.CreateAuthRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	session, err := h.uc.CreateAuth(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "sesión creada", session)
}

// GetByID GET /api/v1/auth/:id
func (h *AuthHandler) GetByID(c *fiber.Ctx) error {
	session, err := h.uc.GetAuthByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "sesión encontrada", session)
}

// FindByToken GET /api/v1/auth/token/:token
func (h *AuthHandler) FindByToken(c *fiber.Ctx) error {
	session, err := h.uc.FindByToken(c.UserContext(), c.Params("token"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "sesión encontrada", session)
}

// Delete DELETE /api/v1/auth/:id
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteAuth(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "sesión eliminada", nil)
}
