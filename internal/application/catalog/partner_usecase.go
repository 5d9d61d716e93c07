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

// PartnerUseCase casos de uso de clientes y proveedores.
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

// Create da de alta un socio. El tipo no cambia después.
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !entity.ValidPartnerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	partner := &entity.Partner{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// List devuelve los socios, filtrados por tipo ("customer"/"supplier", vacío
// o "all" = todos) y por nombre si search no está vacío.
func (uc *PartnerUseCase) List(partnerType, search string) ([]*dto.PartnerResponse, error) {
	partners, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		if partnerType != "" && partnerType != "all" && p.Type != partnerType {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, toPartnerResponse(p))
	}
	return out, nil
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	}
}
