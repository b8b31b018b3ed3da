package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// MemberHandler maneja las peticiones HTTP de miembros (protegido).
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Create POST /api/v1/members
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	member, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "miembro creado", member)
}

// GetByID GET /api/v1/members/:id
func (h *MemberHandler) GetByID(c *fiber.Ctx) error {
	member, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "miembro encontrado", member)
}

// GetAll GET /api/v1/members
func (h *MemberHandler) GetAll(c *fiber.Ctx) error {
	members, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "miembros encontrados", members)
}

// GetAllByClientID GET /api/v1/members/client/:clientId
func (h *MemberHandler) GetAllByClientID(c *fiber.Ctx) error {
	members, err := h.uc.GetAllByClientID(c.UserContext(), c.Params("clientId"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "miembros encontrados", members)
}

// Update PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	member, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "miembro actualizado", member)
}

// Delete DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "miembro eliminado", nil)
}
