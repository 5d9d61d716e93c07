package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/billing"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain"
)

// InvoiceHandler maneja emisión y consulta de facturas (protegido).
type InvoiceHandler struct {
	createUC *posting.CreateInvoiceUseCase
	queryUC  *billing.InvoiceQueryUseCase
	pdfUC    *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	createUC *posting.CreateInvoiceUseCase,
	queryUC *billing.InvoiceQueryUseCase,
	pdfUC *billing.PDFUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, queryUC: queryUC, pdfUC: pdfUC}
}

// Create emite una factura: cabecera, líneas, stock y asiento del libro en una
// sola transacción. POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.CreateInvoice(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "factura inválida: revisar type, partner_id, date, items y totales"})
		case domain.ErrPartnerNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARTNER_NOT_FOUND", Message: "el socio no existe"})
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "algún producto de las líneas no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devuelve las facturas por fecha descendente, filtrables por ?search=
// (prefijo del ID). GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	out, err := h.queryUC.List(c.Context(), search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID devuelve la factura con sus líneas. GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadPDF descarga el comprobante imprimible. GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
