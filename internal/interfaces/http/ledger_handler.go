package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/ledger"
	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain"
)

// LedgerHandler estado de cuenta y pagos en efectivo de un socio (protegido).
type LedgerHandler struct {
	ledgerUC  *ledger.LedgerUseCase
	paymentUC *posting.CashPaymentUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(ledgerUC *ledger.LedgerUseCase, paymentUC *posting.CashPaymentUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, paymentUC: paymentUC}
}

// GetLedger devuelve el libro del socio con el saldo recalculado.
// GET /api/partners/:id/ledger
func (h *LedgerHandler) GetLedger(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.ledgerUC.GetPartnerLedger(c.Context(), id)
	if err != nil {
		if err == domain.ErrPartnerNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "socio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddPayment registra un pago en efectivo contra el libro del socio.
// POST /api/partners/:id/payments
func (h *LedgerHandler) AddPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CashPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.paymentUC.AddCashPayment(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrPartnerNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "socio no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser distinto de cero y date con formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
