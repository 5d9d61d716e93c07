// Package billing contiene las consultas del historial de facturas y la
// generación de su representación imprimible.
package billing

import (
	"context"
	"strings"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceQueryUseCase lecturas del historial de facturas.
type InvoiceQueryUseCase struct {
	invoiceRepo repository.InvoiceRepository
	partnerRepo repository.PartnerRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(
	invoiceRepo repository.InvoiceRepository,
	partnerRepo repository.PartnerRepository,
) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo, partnerRepo: partnerRepo}
}

// List devuelve las cabeceras por fecha descendente, con el nombre del socio
// resuelto. search filtra por prefijo del ID de factura (la búsqueda de la
// pantalla de historial).
func (uc *InvoiceQueryUseCase) List(ctx context.Context, search string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	partners, err := uc.partnerRepo.List()
	if err != nil {
		return nil, err
	}
	namesByID := make(map[string]string, len(partners))
	for _, p := range partners {
		namesByID[p.ID] = p.Name
	}

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		if term != "" && !strings.Contains(strings.ToLower(inv.ID), term) {
			continue
		}
		resp := toHeaderResponse(inv)
		resp.PartnerName = namesByID[inv.PartnerID]
		out = append(out, resp)
	}
	return out, nil
}

// GetByID devuelve la factura completa con sus líneas en orden original.
func (uc *InvoiceQueryUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}

	resp := toHeaderResponse(inv)
	partner, err := uc.partnerRepo.GetByID(inv.PartnerID)
	if err != nil {
		return nil, err
	}
	if partner != nil {
		resp.PartnerName = partner.Name
	}
	resp.Items = make([]dto.InvoiceItemResponse, 0, len(items))
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}
	return resp, nil
}

func toHeaderResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		Type:      inv.Type,
		PartnerID: inv.PartnerID,
		Date:      inv.Date.Format(dateLayout),
		Total:     inv.Total,
		Paid:      inv.Paid,
		Remaining: inv.Total.Sub(inv.Paid),
	}
}
