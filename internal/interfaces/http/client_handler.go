package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/v1/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	client, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "cliente creado", client)
}

// GetByID GET /api/v1/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente encontrado", client)
}

// GetAll GET /api/v1/clients
func (h *ClientHandler) GetAll(c *fiber.Ctx) error {
	clients, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "clientes encontrados", clients)
}

// Update PUT /api/v1/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	client, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente actualizado", client)
}

// Delete DELETE /api/v1/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "cliente eliminado", nil)
}
