package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// GasCylinderRefillHandler maneja las peticiones HTTP de recargas (protegido).
type GasCylinderRefillHandler struct {
	uc *usecase.GasCylinderRefillUseCase
}

// NewGasCylinderRefillHandler construye el handler.
func NewGasCylinderRefillHandler(uc *usecase.GasCylinderRefillUseCase) *GasCylinderRefillHandler {
	return &GasCylinderRefillHandler{uc: uc}
}

// Create POST /api/v1/gas-cylinder-refills
func (h *GasCylinderRefillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGasCylinderRefillRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	refill, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "recarga creada", refill)
}

// GetByID GET /api/v1/gas-cylinder-refills/:id
func (h *GasCylinderRefillHandler) GetByID(c *fiber.Ctx) error {
	refill, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "recarga encontrada", refill)
}

// GetAll GET /api/v1/gas-cylinder-refills
func (h *GasCylinderRefillHandler) GetAll(c *fiber.Ctx) error {
	refills, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "recargas encontradas", refills)
}

// GetAllByCylinderID GET /api/v1/gas-cylinder-refills/cylinder/:cylinderId
func (h *GasCylinderRefillHandler) GetAllByCylinderID(c *fiber.Ctx) error {
	refills, err := h.uc.GetAllByCylinderID(c.UserContext(), c.Params("cylinderId"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "recargas encontradas", refills)
}

// Update PUT /api/v1/gas-cylinder-refills/:id
func (h *GasCylinderRefillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGasCylinderRefillRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	refill, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "recarga actualizada", refill)
}

// Delete DELETE /api/v1/gas-cylinder-refills/:id
func (h *GasCylinderRefillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "recarga eliminada", nil)
}
