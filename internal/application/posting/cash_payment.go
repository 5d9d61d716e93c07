package posting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// defaultCashNote glosa por defecto cuando el pago llega sin nota.
const defaultCashNote = "Pago en efectivo"

// CashPaymentUseCase registra cobros y pagos en efectivo en el libro del socio.
// Es una escritura simple (un solo insert), no necesita transacción.
type CashPaymentUseCase struct {
	partnerRepo     repository.PartnerRepository
	transactionRepo repository.TransactionRepository
}

// NewCashPaymentUseCase construye el caso de uso.
func NewCashPaymentUseCase(
	partnerRepo repository.PartnerRepository,
	transactionRepo repository.TransactionRepository,
) *CashPaymentUseCase {
	return &CashPaymentUseCase{partnerRepo: partnerRepo, transactionRepo: transactionRepo}
}

// AddCashPayment busca el tipo de socio y decide el signo del monto:
// cliente paga → negativo (baja su deuda); a proveedor se le paga → positivo
// (su deuda con nosotros está en negativo, el pago la acerca a cero).
// El signo del monto recibido se ignora: manda el tipo de socio.
func (uc *CashPaymentUseCase) AddCashPayment(ctx context.Context, partnerID string, in dto.CashPaymentRequest) (*dto.TransactionResponse, error) {
	if partnerID == "" || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrPartnerNotFound
	}

	amount := in.Amount.Abs()
	if partner.Type == entity.PartnerTypeCustomer {
		amount = amount.Neg()
	}

	note := in.Note
	if note == "" {
		note = defaultCashNote
	}

	ledgerTx := &entity.Transaction{
		ID:        uuid.New().String(),
		PartnerID: partnerID,
		Date:      date,
		Amount:    amount,
		Type:      entity.TransactionTypeCashPayment,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := uc.transactionRepo.Create(ledgerTx); err != nil {
		return nil, err
	}

	return &dto.TransactionResponse{
		ID:     ledgerTx.ID,
		Date:   ledgerTx.Date.Format(dateLayout),
		Amount: ledgerTx.Amount,
		Type:   ledgerTx.Type,
		Note:   ledgerTx.Note,
	}, nil
}
