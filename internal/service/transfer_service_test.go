package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"storefront-settlement/internal/core/ports"
	"storefront-settlement/internal/core/ports/mocks"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransferOrchestrator_InitiateTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	o := NewTransferOrchestrator(be, "usd", logger.NewWithWriter("error", &bytes.Buffer{}))
	ctx := context.Background()

	be.EXPECT().CreatePayout(ctx, ports.PayoutRequest{SubAccountID: "acct_1", AmountMinorUnits: 9900, Currency: "usd"}).
		Return("po_1", nil)

	receipt, err := o.InitiateTransfer(ctx, "acct_1", 9900)
	require.NoError(t, err)
	assert.Equal(t, "po_1", receipt.ID)
	assert.Equal(t, "acct_1", receipt.SubAccountID)
	assert.Equal(t, int64(9900), receipt.AmountMinorUnits)
	assert.Equal(t, "usd", receipt.Currency)
	assert.False(t, receipt.CreatedAt.IsZero())
}

func TestTransferOrchestrator_SingleAttemptOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	o := NewTransferOrchestrator(be, "usd", logger.NewWithWriter("error", &bytes.Buffer{}))
	ctx := context.Background()

	be.EXPECT().CreatePayout(ctx, gomock.Any()).Return("", errors.New("insufficient balance")).Times(1)

	receipt, err := o.InitiateTransfer(ctx, "acct_1", 9900)
	assert.Nil(t, receipt)
	assert.Equal(t, "PROC_003", apperror.Code(err))
	assert.ErrorContains(t, err, "insufficient balance")
}

func TestTransferOrchestrator_RejectsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := NewTransferOrchestrator(mocks.NewMockBackend(ctrl), "usd", logger.NewWithWriter("error", &bytes.Buffer{}))
	ctx := context.Background()

	_, err := o.InitiateTransfer(ctx, "", 100)
	assert.Equal(t, "VAL_000", apperror.Code(err))
	_, err = o.InitiateTransfer(ctx, "acct_1", 0)
	assert.Equal(t, "VAL_004", apperror.Code(err))
}
