package dto

import "time"

// CreatePartnerRequest body para POST /api/partners.
type CreatePartnerRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // customer | supplier
}

// PartnerResponse socio en respuestas.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
