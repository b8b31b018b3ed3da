package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/v1/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "usuario creado", user)
}

// GetByID GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "usuario encontrado", user)
}

// GetAll GET /api/v1/users
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "usuarios encontrados", users)
}

// FindByEmail GET /api/v1/users/email/:email
func (h *UserHandler) FindByEmail(c *fiber.Ctx) error {
	user, err := h.uc.FindByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "usuario encontrado", user)
}

// Update PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "usuario actualizado", user)
}

// Delete DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "usuario eliminado", nil)
}
