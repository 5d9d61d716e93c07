package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// PartnerRepository define el puerto de persistencia para Partner.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	List() ([]*entity.Partner, error)
}
