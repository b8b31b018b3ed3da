package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/frontino-api/internal/application/dto"
	"github.com/jhoicas/frontino-api/internal/application/usecase"
)

// GasBillHandler maneja las peticiones HTTP de facturas de gas (protegido).
type GasBillHandler struct {
	uc *usecase.GasBillUseCase
}

// NewGasBillHandler construye el handler.
func NewGasBillHandler(uc *usecase.GasBillUseCase) *GasBillHandler {
	return &GasBillHandler{uc: uc}
}

// Create POST /api/v1/gas-bills
func (h *GasBillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGasBillRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	bill, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusCreated, "factura creada", bill)
}

// GetByID GET /api/v1/gas-bills/:id
func (h *GasBillHandler) GetByID(c *fiber.Ctx) error {
	bill, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "factura encontrada", bill)
}

// GetAll GET /api/v1/gas-bills
func (h *GasBillHandler) GetAll(c *fiber.Ctx) error {
	bills, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "facturas encontradas", bills)
}

// FindByTimeAndMember GET /api/v1/gas-bills/member/:memberId/time/:time
func (h *GasBillHandler) FindByTimeAndMember(c *fiber.Ctx) error {
	bill, err := h.uc.FindByTimeAndMember(c.UserContext(), c.Params("time"), c.Params("memberId"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "factura encontrada", bill)
}

// GroupByTime GET /api/v1/gas-bills/grouped/client/:clientId
func (h *GasBillHandler) GroupByTime(c *fiber.Ctx) error {
	grouped, err := h.uc.GroupByTime(c.UserContext(), c.Params("clientId"))
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "facturas agrupadas", grouped)
}

// Update PUT /api/v1/gas-bills/:id
func (h *GasBillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGasBillRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	bill, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "factura actualizada", bill)
}

// Delete DELETE /api/v1/gas-bills/:id
func (h *GasBillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return failWith(c, err)
	}
	return respond(c, fiber.StatusOK, "factura eliminada", nil)
}
