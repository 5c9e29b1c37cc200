package service

import (
	"context"
	"fmt"
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// TransferOrchestratorImpl implements ports.TransferOrchestrator. Each call
// makes exactly one payout attempt.
type TransferOrchestratorImpl struct {
	backend  ports.Backend
	currency string
	log      zerolog.Logger
}

// NewTransferOrchestrator creates a transfer orchestrator paying out in currency.
func NewTransferOrchestrator(backend ports.Backend, currency string, log zerolog.Logger) *TransferOrchestratorImpl {
	return &TransferOrchestratorImpl{backend: backend, currency: currency, log: log}
}

// InitiateTransfer moves amountMinorUnits from the sub-account to its linked
// bank account. A failure is returned to the caller and never retried.
func (o *TransferOrchestratorImpl) InitiateTransfer(ctx context.Context, subAccountID string, amountMinorUnits int64) (*domain.TransferReceipt, error) {
	if subAccountID == "" {
		return nil, apperror.Validation("sub-account id is required")
	}
	if amountMinorUnits <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	id, err := o.backend.CreatePayout(ctx, ports.PayoutRequest{
		SubAccountID:     subAccountID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         o.currency,
	})
	if err != nil {
		o.log.Error().Err(err).
			Str("sub_account_id", subAccountID).
			Int64("amount", amountMinorUnits).
			Msg("transfer failed")
		return nil, apperror.ErrTransferFailed(fmt.Errorf("create payout: %w", err))
	}

	receipt := &domain.TransferReceipt{
		ID:               id,
		SubAccountID:     subAccountID,
		AmountMinorUnits: amountMinorUnits,
		Currency:         o.currency,
		CreatedAt:        time.Now().UTC(),
	}
	o.log.Info().
		Str("transfer_id", id).
		Str("sub_account_id", subAccountID).
		Int64("amount", amountMinorUnits).
		Msg("transfer initiated")
	return receipt, nil
}
