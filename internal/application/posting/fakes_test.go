package posting_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: una "base" compartida por los tres repos, más un snapshot
// para simular el rollback de la transacción.
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

// fakeStore estado compartido de los fakes.
type fakeStore struct {
	products     map[string]*entity.Product
	invoices     []*entity.Invoice
	items        []*entity.InvoiceItem
	transactions []*entity.Transaction

	// failTransactions fuerza un error al insertar un asiento (para probar
	// que el rollback no deja rastro).
	failTransactions bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product)}
}

func (s *fakeStore) addProduct(id, name string, purchase, sale int64, stock int64) {
	s.products[id] = &entity.Product{
		ID:            id,
		Name:          name,
		PurchasePrice: decimal.NewFromInt(purchase),
		SalePrice:     decimal.NewFromInt(sale),
		Stock:         stock,
	}
}

// snapshot copia profunda del estado, para restaurar en rollback.
func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		v := *p
		cp.products[id] = &v
	}
	cp.invoices = append(cp.invoices, s.invoices...)
	cp.items = append(cp.items, s.items...)
	cp.transactions = append(cp.transactions, s.transactions...)
	cp.failTransactions = s.failTransactions
	return cp
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.invoices = from.invoices
	s.items = from.items
	s.transactions = from.transactions
}

// ── repos sobre el store ──────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) AdjustStock(productID string, delta int64) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock += delta
	return nil
}
func (r *fakeProductRepo) UpdatePrices(productID string, purchasePrice decimal.Decimal, salePrice *decimal.Decimal) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.PurchasePrice = purchasePrice
	if salePrice != nil {
		p.SalePrice = *salePrice
	}
	return nil
}

type fakeInvoiceRepo struct{ s *fakeStore }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.invoices = append(r.s.invoices, inv)
	return nil
}
func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.s.items = append(r.s.items, item)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) { return r.s.invoices, nil }
func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.s.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeTransactionRepo struct{ s *fakeStore }

func (r *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	if r.s.failTransactions {
		return errBoom
	}
	r.s.transactions = append(r.s.transactions, tx)
	return nil
}
func (r *fakeTransactionRepo) ListByPartner(partnerID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.PartnerID == partnerID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakePartnerRepo struct {
	partners map[string]*entity.Partner
}

func (r *fakePartnerRepo) Create(p *entity.Partner) error { r.partners[p.ID] = p; return nil }
func (r *fakePartnerRepo) GetByID(id string) (*entity.Partner, error) {
	return r.partners[id], nil
}
func (r *fakePartnerRepo) List() ([]*entity.Partner, error) {
	out := make([]*entity.Partner, 0, len(r.partners))
	for _, p := range r.partners {
		out = append(out, p)
	}
	return out, nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

// fakeTxRunner imita la semántica transaccional: si el closure falla, restaura
// el snapshot previo (nada queda persistido).
type fakeTxRunner struct{ s *fakeStore }

var _ posting.PostingTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunPosting(
	_ context.Context,
	fn func(repository.ProductRepository, repository.InvoiceRepository, repository.TransactionRepository) error,
) error {
	before := r.s.snapshot()
	err := fn(&fakeProductRepo{s: r.s}, &fakeInvoiceRepo{s: r.s}, &fakeTransactionRepo{s: r.s})
	if err != nil {
		r.s.restore(before)
		return err
	}
	return nil
}
