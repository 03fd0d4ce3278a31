package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// TransactionUseCase casos de uso de las transacciones financieras de un negocio.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra una transacción. Las ventas se guardan en positivo y el resto en negativo,
// sin importar el signo recibido.
func (uc *TransactionUseCase) Create(ctx context.Context, businessID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	amount := in.Amount.Abs()
	if in.Type != entity.TransactionSale {
		amount = amount.Neg()
	}
	if err := storedAmounts(&amount); err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return ToTransactionResponse(t), nil
}

// List lista transacciones, más recientes primero; limit 0 = todas.
func (uc *TransactionUseCase) List(ctx context.Context, businessID string, limit int) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.ListByBusiness(ctx, businessID, limit)
	if err != nil {
		return nil, err
	}
	return TransactionResponses(list), nil
}

// TransactionResponses mapea una lista de transacciones.
func TransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *ToTransactionResponse(t))
	}
	return out
}

// ToTransactionResponse mapea la entidad al DTO.
func ToTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}
