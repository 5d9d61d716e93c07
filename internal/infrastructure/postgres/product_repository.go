package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, purchase_price, sale_price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.PurchasePrice, product.SalePrice,
		product.Stock, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(purchase_price, 0), COALESCE(sale_price, 0), COALESCE(stock, 0), created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.PurchasePrice, &p.SalePrice, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos. Los numéricos nullable vuelven como 0
// (documentos viejos pueden no traer el campo).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(purchase_price, 0), COALESCE(sale_price, 0), COALESCE(stock, 0), created_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PurchasePrice, &p.SalePrice, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustStock aplica el delta como incremento atómico en la misma sentencia
// (stock = stock + delta): dos contabilizaciones concurrentes sobre el mismo
// producto no se pisan. Sin piso: el stock puede quedar negativo.
func (r *ProductRepo) AdjustStock(productID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = COALESCE(stock, 0) + $2 WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// UpdatePrices sobreescribe el precio de compra (último costo) y, si salePrice
// no es nil, también el de venta. Última escritura gana.
func (r *ProductRepo) UpdatePrices(productID string, purchasePrice decimal.Decimal, salePrice *decimal.Decimal) error {
	query := `
		UPDATE products
		SET purchase_price = $2,
		    sale_price     = COALESCE($3, sale_price)
		WHERE id = $1`
	var sell *decimal.Decimal
	if salePrice != nil {
		v := *salePrice
		sell = &v
	}
	cmd, err := r.q.Exec(context.Background(), query, productID, purchasePrice, sell)
	if err != nil {
		return fmt.Errorf("update prices: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
