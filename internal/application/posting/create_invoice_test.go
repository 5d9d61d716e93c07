package posting_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testPartnerID = "00000000-0000-0000-0000-0000000000aa"
	testProductA  = "00000000-0000-0000-0000-0000000000b1"
	testProductB  = "00000000-0000-0000-0000-0000000000b2"
	testDate      = "2026-08-29"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func dptr(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

func newSUT(store *fakeStore) *posting.CreateInvoiceUseCase {
	return posting.NewCreateInvoiceUseCase(&fakeTxRunner{s: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

// Una venta descuenta el stock de cada línea y no toca los precios.
func TestCreateInvoice_VentaDescuentaStockSinTocarPrecios(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	store.addProduct(testProductB, "Aceite 1L", 2500, 3500, 4)
	uc := newSUT(store)

	out, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 3, Price: d(1200)},
			{ProductID: testProductB, Name: "Aceite 1L", Quantity: 1, Price: d(3500)},
		},
		Paid: d(7100),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, store.products[testProductA].Stock, "stock A: 10 - 3")
	assert.EqualValues(t, 3, store.products[testProductB].Stock, "stock B: 4 - 1")

	// Los precios del producto no cambian en ventas.
	assert.True(t, store.products[testProductA].PurchasePrice.Equal(d(800)))
	assert.True(t, store.products[testProductA].SalePrice.Equal(d(1200)))

	assert.True(t, out.Total.Equal(d(7100)), "total = 3×1200 + 1×3500")
	assert.True(t, out.Remaining.IsZero(), "pagada completa: sin saldo")
}

// El stock puede quedar negativo: no hay piso de cero.
func TestCreateInvoice_VentaPuedeDejarStockNegativo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 2)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 5, Price: d(1200)},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, -3, store.products[testProductA].Stock)
}

// Venta con saldo pendiente: el asiento registra +remaining (el cliente debe).
// Ejemplo de referencia: 2 unidades × $10, pagó $5 → asiento por +15.
func TestCreateInvoice_VentaRegistraSaldoPositivo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Gaseosa", 6, 10, 20)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Gaseosa", Quantity: 2, Price: d(10)},
		},
		Paid: d(5),
	})
	require.NoError(t, err)

	require.Len(t, store.transactions, 1)
	tx := store.transactions[0]
	assert.True(t, tx.Amount.Equal(d(15)), "venta: asiento por +(total - pagado)")
	assert.Equal(t, entity.TransactionTypeSale, tx.Type)
	assert.Equal(t, testPartnerID, tx.PartnerID)
	assert.NotEmpty(t, tx.InvoiceID, "el asiento referencia a la factura")
	assert.Contains(t, tx.Note, "Factura de venta N°")
}

// Factura saldada sin pago (total 0) no genera asiento; pagada por completo
// con paid > 0 sí lo genera, por monto cero.
func TestCreateInvoice_AsientoSoloSiHaySaldoOPago(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Bolsa", 0, 0, 100)
	uc := newSUT(store)

	// total = 0, paid = 0 → sin asiento
	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Bolsa", Quantity: 1, Price: d(0)},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, store.transactions, "sin saldo ni pago no se toca el libro")

	// total = paid > 0 → asiento por 0 (el pago queda en el historial)
	store.addProduct(testProductB, "Pan", 300, 500, 10)
	_, err = uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductB, Name: "Pan", Quantity: 2, Price: d(500)},
		},
		Paid: d(1000),
	})
	require.NoError(t, err)
	require.Len(t, store.transactions, 1)
	assert.True(t, store.transactions[0].Amount.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

// Una compra suma stock, pisa el precio de compra con el costo de la línea y
// solo cambia el precio de venta si update_sell_price > 0.
func TestCreateInvoice_CompraSumaStockYActualizaPrecios(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	store.addProduct(testProductB, "Aceite 1L", 2500, 3500, 4)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypePurchase,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			// Con nuevo precio de venta
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 20, Price: d(850), UpdateSellPrice: dptr(1300)},
			// Sin nuevo precio de venta: solo último costo
			{ProductID: testProductB, Name: "Aceite 1L", Quantity: 6, Price: d(2600)},
		},
		Paid: d(32600),
	})
	require.NoError(t, err)

	a := store.products[testProductA]
	assert.EqualValues(t, 30, a.Stock, "stock A: 10 + 20")
	assert.True(t, a.PurchasePrice.Equal(d(850)), "último costo pisa el precio de compra")
	assert.True(t, a.SalePrice.Equal(d(1300)), "update_sell_price > 0 pisa el precio de venta")

	b := store.products[testProductB]
	assert.EqualValues(t, 10, b.Stock, "stock B: 4 + 6")
	assert.True(t, b.PurchasePrice.Equal(d(2600)))
	assert.True(t, b.SalePrice.Equal(d(3500)), "sin update_sell_price el precio de venta queda")
}

// update_sell_price <= 0 no toca el precio de venta.
func TestCreateInvoice_CompraIgnoraUpdateSellPriceNoPositivo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypePurchase,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 5, Price: d(850), UpdateSellPrice: dptr(0)},
		},
	})
	require.NoError(t, err)
	assert.True(t, store.products[testProductA].SalePrice.Equal(d(1200)))
}

// Compra con saldo: el asiento registra -|remaining| (le debemos al proveedor).
func TestCreateInvoice_CompraRegistraSaldoNegativo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Harina", 400, 700, 0)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypePurchase,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Harina", Quantity: 10, Price: d(400)},
		},
		Paid: d(1000),
	})
	require.NoError(t, err)

	require.Len(t, store.transactions, 1)
	tx := store.transactions[0]
	assert.True(t, tx.Amount.Equal(d(-3000)), "compra: asiento por -|total - pagado|")
	assert.Equal(t, entity.TransactionTypePurchase, tx.Type)
	assert.Contains(t, tx.Note, "Factura de compra N°")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y atomicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_RequestInvalido(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	uc := newSUT(store)

	validItem := dto.InvoiceItemRequest{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 1, Price: d(1200)}

	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
	}{
		{"tipo desconocido", dto.CreateInvoiceRequest{Type: "refund", PartnerID: testPartnerID, Date: testDate, Items: []dto.InvoiceItemRequest{validItem}}},
		{"sin socio", dto.CreateInvoiceRequest{Type: "sale", Date: testDate, Items: []dto.InvoiceItemRequest{validItem}}},
		{"sin líneas", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: testDate}},
		{"fecha inválida", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: "29/08/2026", Items: []dto.InvoiceItemRequest{validItem}}},
		{"cantidad cero", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: testDate,
			Items: []dto.InvoiceItemRequest{{ProductID: testProductA, Quantity: 0, Price: d(1200)}}}},
		{"precio negativo", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: testDate,
			Items: []dto.InvoiceItemRequest{{ProductID: testProductA, Quantity: 1, Price: d(-5)}}}},
		{"pago negativo", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: testDate,
			Items: []dto.InvoiceItemRequest{validItem}, Paid: d(-1)}},
		{"total declarado no coincide", dto.CreateInvoiceRequest{Type: "sale", PartnerID: testPartnerID, Date: testDate,
			Items: []dto.InvoiceItemRequest{validItem}, Total: d(999)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateInvoice(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, store.invoices, "nada persistido tras requests inválidos")
	assert.EqualValues(t, 10, store.products[testProductA].Stock)
}

// Producto inexistente en una línea: la contabilización entera se revierte,
// incluida la cabecera y los ajustes de stock de líneas anteriores.
func TestCreateInvoice_ProductoInexistenteRevierteTodo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 2, Price: d(1200)},
			{ProductID: "no-existe", Name: "Fantasma", Quantity: 1, Price: d(100)},
		},
		Paid: d(2500),
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Empty(t, store.invoices, "cabecera revertida")
	assert.Empty(t, store.items, "líneas revertidas")
	assert.Empty(t, store.transactions, "asiento revertido")
	assert.EqualValues(t, 10, store.products[testProductA].Stock, "stock de la primera línea restaurado")
}

// Error al escribir el asiento del libro: también revierte stock y cabecera.
func TestCreateInvoice_ErrorEnLibroRevierteTodo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	store.failTransactions = true
	uc := newSUT(store)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 2, Price: d(1200)},
		},
		Paid: d(100),
	})
	require.ErrorIs(t, err, errBoom)

	assert.Empty(t, store.invoices)
	assert.EqualValues(t, 10, store.products[testProductA].Stock)
}

// El total lo recalcula el servidor; si el caller manda el total correcto se
// acepta, y el response trae remaining = total - paid.
func TestCreateInvoice_TotalDeclaradoCoincidente(t *testing.T) {
	store := newFakeStore()
	store.addProduct(testProductA, "Arroz 1kg", 800, 1200, 10)
	uc := newSUT(store)

	out, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		Type:      entity.InvoiceTypeSale,
		PartnerID: testPartnerID,
		Date:      testDate,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductA, Name: "Arroz 1kg", Quantity: 4, Price: d(1200)},
		},
		Total: d(4800),
		Paid:  d(1800),
	})
	require.NoError(t, err)
	assert.True(t, out.Remaining.Equal(d(3000)))
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Total.Equal(d(4800)))
}
