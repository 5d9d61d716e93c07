package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/catalog"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products = append(r.products, p); return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) { return r.products, nil }
func (r *fakeProductRepo) AdjustStock(string, int64) error  { return nil }
func (r *fakeProductRepo) UpdatePrices(string, decimal.Decimal, *decimal.Decimal) error {
	return nil
}

type fakePartnerRepo struct{ partners []*entity.Partner }

func (r *fakePartnerRepo) Create(p *entity.Partner) error { r.partners = append(r.partners, p); return nil }
func (r *fakePartnerRepo) GetByID(id string) (*entity.Partner, error) {
	for _, p := range r.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePartnerRepo) List() ([]*entity.Partner, error) { return r.partners, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AltaConStockInicial(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := catalog.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:          "  Yerba 500g ",
		PurchasePrice: decimal.NewFromInt(1800),
		SalePrice:     decimal.NewFromInt(2500),
		Stock:         12,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Yerba 500g", out.Name, "nombre con espacios recortados")
	assert.EqualValues(t, 12, out.Stock)
	require.Len(t, repo.products, 1)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := catalog.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", SalePrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_FiltraPorNombre(t *testing.T) {
	repo := &fakeProductRepo{products: []*entity.Product{
		{ID: "1", Name: "Arroz largo fino"},
		{ID: "2", Name: "Aceite girasol"},
		{ID: "3", Name: "arroz yamaní"},
	}}
	uc := catalog.NewProductUseCase(repo)

	out, err := uc.List("arroz")
	require.NoError(t, err)
	assert.Len(t, out, 2, "búsqueda insensible a mayúsculas")

	out, err = uc.List("")
	require.NoError(t, err)
	assert.Len(t, out, 3, "sin término devuelve todo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Socios
// ──────────────────────────────────────────────────────────────────────────────

func TestPartnerCreate_TipoObligatorio(t *testing.T) {
	uc := catalog.NewPartnerUseCase(&fakePartnerRepo{})

	_, err := uc.Create(dto.CreatePartnerRequest{Name: "Don Ramón", Type: "vecino"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreatePartnerRequest{Name: "Don Ramón", Type: entity.PartnerTypeCustomer})
	require.NoError(t, err)
	assert.Equal(t, entity.PartnerTypeCustomer, out.Type)
}

func TestPartnerList_FiltraPorTipoYNombre(t *testing.T) {
	repo := &fakePartnerRepo{partners: []*entity.Partner{
		{ID: "1", Name: "Distribuidora Sur", Type: entity.PartnerTypeSupplier},
		{ID: "2", Name: "María", Type: entity.PartnerTypeCustomer},
		{ID: "3", Name: "Mario", Type: entity.PartnerTypeCustomer},
	}}
	uc := catalog.NewPartnerUseCase(repo)

	out, err := uc.List(entity.PartnerTypeCustomer, "")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.List("all", "mar")
	require.NoError(t, err)
	assert.Len(t, out, 2, "all no filtra por tipo")

	out, err = uc.List(entity.PartnerTypeSupplier, "sur")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Distribuidora Sur", out[0].Name)
}
