package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste un nuevo socio.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, name, type, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Type, partner.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un socio por ID.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	query := `SELECT id, name, type, created_at FROM partners WHERE id = $1`
	var p entity.Partner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Type, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return &p, nil
}

// List devuelve todos los socios.
func (r *PartnerRepo) List() ([]*entity.Partner, error) {
	query := `SELECT id, name, type, created_at FROM partners ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
