package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto para la representación imprimible de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		partner *entity.Partner,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

// PDFUseCase genera el comprobante imprimible de una factura ya emitida.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	partnerRepo repository.PartnerRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	partnerRepo repository.PartnerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, partnerRepo: partnerRepo, generator: generator}
}

// DownloadInvoicePDF recupera la factura con sus líneas y el socio, y genera
// el PDF del comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	partner, err := uc.partnerRepo.GetByID(inv.PartnerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener socio: %w", err)
	}
	if partner == nil {
		// La FK garantiza el socio al facturar; si falta acá la DB fue tocada a mano.
		partner = &entity.Partner{ID: inv.PartnerID, Name: "-"}
	}

	bytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, partner, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar comprobante: %w", err)
	}

	short := inv.ID
	if len(short) > 6 {
		short = short[:6]
	}
	return bytes, fmt.Sprintf("factura-%s.pdf", short), nil
}
