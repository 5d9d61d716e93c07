package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// TransactionRepository define el puerto del libro de socios (append-only).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	// ListByPartner devuelve los asientos del socio ordenados por fecha
	// ascendente (orden de presentación del estado de cuenta).
	ListByPartner(partnerID string) ([]*entity.Transaction, error)
}
