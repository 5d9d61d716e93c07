package posting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// dateLayout formato de fecha de los requests (input type=date).
const dateLayout = "2006-01-02"

// CreateInvoiceUseCase contabiliza una factura: guarda cabecera y líneas,
// ajusta stock y precios de cada producto y registra el saldo pendiente en el
// libro del socio, todo en una sola transacción.
type CreateInvoiceUseCase struct {
	txRunner PostingTxRunner
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(txRunner PostingTxRunner) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{txRunner: txRunner}
}

// CreateInvoice valida el request y ejecuta la contabilización.
//
// Efectos por línea:
//   - venta:  stock -= |cantidad|
//   - compra: stock += |cantidad|, purchase_price = precio de línea (último
//     costo) y sale_price = update_sell_price solo si este es > 0
//
// Saldo: remaining = total - paid. Se registra un asiento cuando
// remaining != 0 o paid > 0. Venta registra +remaining (el cliente debe);
// compra registra -|remaining| (debemos al proveedor). La asimetría es
// intencional: el estado de cuenta depende de ella.
//
// La existencia de producto y socio no se pre-valida: un producto inexistente
// corta el UPDATE de stock y un socio inexistente viola la FK al insertar;
// en ambos casos la transacción entera se revierte sin rastro persistido.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !entity.ValidInvoiceType(in.Type) || in.PartnerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// Totales de línea se recalculan en el servidor: total = cantidad × precio.
	var total decimal.Decimal
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	// El caller garantiza total = Σ líneas; si manda otro valor es un bug suyo.
	if !in.Total.IsZero() && !in.Total.Equal(total) {
		return nil, domain.ErrInvalidInput
	}
	paid := in.Paid
	if paid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:        uuid.New().String(),
		Type:      in.Type,
		PartnerID: in.PartnerID,
		Date:      date,
		Total:     total,
		Paid:      paid,
		CreatedAt: now,
	}

	err = uc.txRunner.RunPosting(ctx, func(
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		// 1) Cabecera y líneas
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i := range in.Items {
			item := &in.Items[i]
			line := &entity.InvoiceItem{
				ID:        uuid.New().String(),
				InvoiceID: inv.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Total:     item.Price.Mul(decimal.NewFromInt(item.Quantity)),
				Position:  i,
			}
			if item.UpdateSellPrice != nil {
				v := *item.UpdateSellPrice
				line.UpdateSellPrice = &v
			}
			if err := invoiceRepo.CreateItem(line); err != nil {
				return err
			}

			// 2) Stock: incremento atómico, venta resta y compra suma
			delta := item.Quantity
			if in.Type == entity.InvoiceTypeSale {
				delta = -item.Quantity
			}
			if err := productRepo.AdjustStock(item.ProductID, delta); err != nil {
				return err
			}

			// 3) Precios: solo en compras. Último costo, sin promedio ponderado.
			if in.Type == entity.InvoiceTypePurchase {
				var newSell *decimal.Decimal
				if item.UpdateSellPrice != nil && item.UpdateSellPrice.IsPositive() {
					newSell = item.UpdateSellPrice
				}
				if err := productRepo.UpdatePrices(item.ProductID, item.Price, newSell); err != nil {
					return err
				}
			}
		}

		// 4) Asiento en el libro del socio: el saldo pendiente de la factura.
		// Se omite solo si no quedó saldo y no se pagó nada.
		remaining := total.Sub(paid)
		if !remaining.IsZero() || paid.IsPositive() {
			amount := remaining
			if in.Type == entity.InvoiceTypePurchase {
				amount = remaining.Abs().Neg()
			}
			ledgerTx := &entity.Transaction{
				ID:        uuid.New().String(),
				PartnerID: in.PartnerID,
				Date:      date,
				Amount:    amount,
				Type:      in.Type,
				Note:      invoiceNote(in.Type, inv.ID),
				InvoiceID: inv.ID,
				CreatedAt: now,
			}
			if err := transactionRepo.Create(ledgerTx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, in.Items), nil
}

// invoiceNote arma la glosa del asiento con los primeros 6 caracteres del ID.
func invoiceNote(invoiceType, invoiceID string) string {
	short := invoiceID
	if len(short) > 6 {
		short = short[:6]
	}
	if invoiceType == entity.InvoiceTypeSale {
		return "Factura de venta N° " + short
	}
	return "Factura de compra N° " + short
}

func toInvoiceResponse(inv *entity.Invoice, items []dto.InvoiceItemRequest) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:        inv.ID,
		Type:      inv.Type,
		PartnerID: inv.PartnerID,
		Date:      inv.Date.Format(dateLayout),
		Total:     inv.Total,
		Paid:      inv.Paid,
		Remaining: inv.Total.Sub(inv.Paid),
		Items:     make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Price.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}
	return resp
}
