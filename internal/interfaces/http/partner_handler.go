package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/catalog"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
)

// PartnerHandler maneja las peticiones HTTP para socios (protegido).
type PartnerHandler struct {
	uc *catalog.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *catalog.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create da de alta un cliente o proveedor. POST /api/partners
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y type debe ser customer o supplier"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el socio ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve los socios, filtrables por ?type= y ?search=.
// GET /api/partners
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	partnerType := c.Query("type")
	search := c.Query("search")
	out, err := h.uc.List(partnerType, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
