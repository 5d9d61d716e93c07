// Package catalog contiene los casos de uso de alta y consulta de productos
// y socios (el catálogo base sobre el que trabaja la facturación).
package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto con su stock inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List devuelve el inventario completo, filtrado por nombre si search no está
// vacío. Lectura total + filtro en memoria: sin paginación del lado del
// servidor, igual que el resto de los listados.
func (uc *ProductUseCase) List(search string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
	}
}
