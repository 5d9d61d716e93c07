// Package ledger arma el estado de cuenta de un socio: sus asientos en orden
// cronológico y el saldo corriente calculado.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// LedgerUseCase consulta el estado de cuenta de un socio.
type LedgerUseCase struct {
	partnerRepo     repository.PartnerRepository
	transactionRepo repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	partnerRepo repository.PartnerRepository,
	transactionRepo repository.TransactionRepository,
) *LedgerUseCase {
	return &LedgerUseCase{partnerRepo: partnerRepo, transactionRepo: transactionRepo}
}

// GetPartnerLedger devuelve el socio, sus asientos por fecha ascendente y el
// saldo corriente. El saldo es la suma de todo el historial en cada consulta,
// O(n) sobre los asientos del socio; a la escala de un negocio chico alcanza
// y evita mantener un campo de saldo desnormalizado que pueda desviarse.
func (uc *LedgerUseCase) GetPartnerLedger(ctx context.Context, partnerID string) (*dto.LedgerResponse, error) {
	if partnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrPartnerNotFound
	}

	txs, err := uc.transactionRepo.ListByPartner(partnerID)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		balance = balance.Add(t.Amount)
		out = append(out, dto.TransactionResponse{
			ID:        t.ID,
			Date:      t.Date.Format(dateLayout),
			Amount:    t.Amount,
			Type:      t.Type,
			Note:      t.Note,
			InvoiceID: t.InvoiceID,
		})
	}

	return &dto.LedgerResponse{
		Partner: dto.PartnerResponse{
			ID:        partner.ID,
			Name:      partner.Name,
			Type:      partner.Type,
			CreatedAt: partner.CreatedAt,
		},
		Transactions:   out,
		CurrentBalance: balance,
	}, nil
}
