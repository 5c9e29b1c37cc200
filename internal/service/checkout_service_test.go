package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"storefront-settlement/internal/adapter/backend"
	"storefront-settlement/internal/adapter/processor"
	"storefront-settlement/internal/adapter/storage/memory"
	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/internal/core/ports/mocks"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCheckoutConfig = CheckoutConfig{Currency: "usd", MerchantDisplayName: "Storefront"}

type checkoutFixture struct {
	svc      *CheckoutServiceImpl
	accounts *AccountServiceImpl
	proc     *mocks.MockProcessor
	backend  *mocks.MockBackend
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logger.NewWithWriter("error", &bytes.Buffer{})
	accounts, _ := newTestAccountService(t, memory.NewKVStore())
	engine, err := NewSettlementEngine(100, false, log)
	require.NoError(t, err)

	proc := mocks.NewMockProcessor(ctrl)
	be := mocks.NewMockBackend(ctrl)
	proc.EXPECT().Available().Return(true)

	svc := NewCheckoutService(accounts, engine, proc, be, NewTransferOrchestrator(be, "usd", log), testCheckoutConfig, log)
	return &checkoutFixture{svc: svc, accounts: accounts, proc: proc, backend: be}
}

// merchantWithSubAccount registers demo with a linked payout account and an
// attached sub-account that has not finished onboarding.
func (f *checkoutFixture) merchantWithSubAccount(t *testing.T, autoTransfer bool) *domain.Merchant {
	t.Helper()
	ctx := context.Background()
	m := registerDemo(t, f.accounts)
	payout := validPayout()
	payout.AutoTransferEnabled = autoTransfer
	m, err := f.accounts.UpdatePayoutAccount(ctx, m, payout)
	require.NoError(t, err)
	m, err = f.accounts.AttachSubAccount(ctx, m, domain.SubAccount{ID: "acct_1", Kind: domain.SubAccountKindExpress}, "btok_1")
	require.NoError(t, err)
	return m
}

func TestCheckoutService_Quote(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	m := f.merchantWithSubAccount(t, false)

	q, err := f.svc.Quote(ctx, m, "100.00")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), q.AmountMinorUnits)
	assert.Equal(t, "usd", q.Currency)
	assert.Equal(t, int64(100), q.Split.FeeAmount)
	assert.Equal(t, int64(9900), q.Split.MerchantAmount)
	assert.Equal(t, domain.Route{Kind: domain.RouteFeeSplit, SubAccountID: "acct_1", FeeAmount: 100}, q.Route)

	_, err = f.svc.Quote(ctx, m, "abc")
	assert.Equal(t, "VAL_004", apperror.Code(err))
	_, err = f.svc.Quote(ctx, nil, "1")
	assert.Equal(t, "AUTH_003", apperror.Code(err))
}

func TestCheckoutService_Pay_DirectRoute(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	m := registerDemo(t, f.accounts)

	gomock.InOrder(
		f.backend.EXPECT().CreateChargeWithFee(ctx, ports.ChargeRequest{AmountMinorUnits: 1250, Currency: "usd"}).
			Return("pi_1_secret_x", nil),
		f.proc.EXPECT().InitChargeUI(ctx, ports.ChargeUIConfig{
			MerchantDisplayName: "Storefront",
			AmountMinorUnits:    1250,
			Currency:            "usd",
			ClientSecret:        "pi_1_secret_x",
		}).Return(nil),
		f.proc.EXPECT().PresentChargeUI(ctx).Return(domain.ChargeOutcomeSucceeded, nil),
	)

	attempt, err := f.svc.Pay(ctx, m, "12.50")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateSucceeded, attempt.State)
	assert.Equal(t, domain.RouteDirect, attempt.Route.Kind)
	assert.Equal(t, int64(1250), attempt.AmountMinorUnits)
	assert.NotNil(t, attempt.CompletedAt)
	assert.Nil(t, attempt.Transfer)
}

func TestCheckoutService_Pay_FeeSplitCompletesOnboardingAndTransfers(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	m := f.merchantWithSubAccount(t, true)

	fee := int64(100)
	f.backend.EXPECT().CreateChargeWithFee(ctx, ports.ChargeRequest{
		AmountMinorUnits: 10000, Currency: "usd", SubAccountID: "acct_1", FeeAmount: 100,
	}).Return("pi_1_secret_x", nil)
	f.proc.EXPECT().InitChargeUI(ctx, ports.ChargeUIConfig{
		MerchantDisplayName: "Storefront",
		AmountMinorUnits:    10000,
		Currency:            "usd",
		FeeAmount:           &fee,
		ClientSecret:        "pi_1_secret_x",
	}).Return(nil)
	f.proc.EXPECT().PresentChargeUI(ctx).Return(domain.ChargeOutcomeSucceeded, nil)
	f.backend.EXPECT().CreatePayout(ctx, ports.PayoutRequest{SubAccountID: "acct_1", AmountMinorUnits: 9900, Currency: "usd"}).
		Return("po_1", nil)

	attempt, err := f.svc.Pay(ctx, m, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateSucceeded, attempt.State)
	assert.True(t, attempt.Route.IsFeeSplit())
	require.NotNil(t, attempt.Transfer)
	assert.Equal(t, "po_1", attempt.Transfer.ID)
	assert.Empty(t, attempt.TransferError)

	assert.True(t, f.accounts.Current().SubAccount.OnboardingComplete)
}

func TestCheckoutService_Pay_TransferFailureKeepsCharge(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	m := f.merchantWithSubAccount(t, true)

	f.backend.EXPECT().CreateChargeWithFee(ctx, gomock.Any()).Return("pi_1_secret_x", nil)
	f.proc.EXPECT().InitChargeUI(ctx, gomock.Any()).Return(nil)
	f.proc.EXPECT().PresentChargeUI(ctx).Return(domain.ChargeOutcomeSucceeded, nil)
	f.backend.EXPECT().CreatePayout(ctx, gomock.Any()).Return("", errors.New("insufficient balance"))

	attempt, err := f.svc.Pay(ctx, m, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateSucceeded, attempt.State)
	assert.Nil(t, attempt.Transfer)
	assert.Equal(t, "Transfer to payout account failed", attempt.TransferError)
}

func TestCheckoutService_Pay_Canceled(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()
	m := f.merchantWithSubAccount(t, true)

	f.backend.EXPECT().CreateChargeWithFee(ctx, gomock.Any()).Return("pi_1_secret_x", nil)
	f.proc.EXPECT().InitChargeUI(ctx, gomock.Any()).Return(nil)
	f.proc.EXPECT().PresentChargeUI(ctx).Return(domain.ChargeOutcomeCanceled, nil)

	attempt, err := f.svc.Pay(ctx, m, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateCanceled, attempt.State)
	assert.Nil(t, attempt.Transfer)
	assert.False(t, f.accounts.Current().SubAccount.OnboardingComplete, "canceled charges have no side effects")
}

func TestCheckoutService_Pay_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid amount", func(t *testing.T) {
		f := newCheckoutFixture(t)
		m := registerDemo(t, f.accounts)

		attempt, err := f.svc.Pay(ctx, m, "-5")
		assert.Equal(t, "VAL_004", apperror.Code(err))
		require.NotNil(t, attempt)
		assert.Equal(t, domain.PaymentStateFailed, attempt.State)
	})

	t.Run("charge creation rejected", func(t *testing.T) {
		f := newCheckoutFixture(t)
		m := registerDemo(t, f.accounts)
		f.backend.EXPECT().CreateChargeWithFee(ctx, gomock.Any()).Return("", errors.New("backend down"))

		attempt, err := f.svc.Pay(ctx, m, "5")
		assert.Equal(t, "PROC_001", apperror.Code(err))
		assert.Equal(t, domain.PaymentStateFailed, attempt.State)
	})

	t.Run("declined", func(t *testing.T) {
		f := newCheckoutFixture(t)
		m := f.merchantWithSubAccount(t, true)
		f.backend.EXPECT().CreateChargeWithFee(ctx, gomock.Any()).Return("pi_1_secret_x", nil)
		f.proc.EXPECT().InitChargeUI(ctx, gomock.Any()).Return(nil)
		f.proc.EXPECT().PresentChargeUI(ctx).Return(domain.ChargeOutcomeFailed, processor.ErrDeclined)

		attempt, err := f.svc.Pay(ctx, m, "5")
		assert.Equal(t, "PROC_002", apperror.Code(err))
		assert.Equal(t, domain.PaymentStateFailed, attempt.State)
		assert.NotEmpty(t, attempt.FailureReason)
		assert.False(t, f.accounts.Current().SubAccount.OnboardingComplete)
	})

	t.Run("no session", func(t *testing.T) {
		f := newCheckoutFixture(t)
		attempt, err := f.svc.Pay(ctx, nil, "5")
		assert.Nil(t, attempt)
		assert.Equal(t, "AUTH_003", apperror.Code(err))
	})
}

func TestCheckoutService_Pay_ProcessorUnavailable(t *testing.T) {
	log := logger.NewWithWriter("error", &bytes.Buffer{})
	accounts, _ := newTestAccountService(t, memory.NewKVStore())
	engine, err := NewSettlementEngine(100, false, log)
	require.NoError(t, err)
	be := backend.NewSimulated(log)
	svc := NewCheckoutService(accounts, engine, processor.Unavailable{}, be, NewTransferOrchestrator(be, "usd", log), testCheckoutConfig, log)

	attempt, err := svc.Pay(context.Background(), registerDemo(t, accounts), "5")
	assert.Nil(t, attempt)
	assert.Equal(t, "PROC_004", apperror.Code(err))
}

func TestCheckoutService_Pay_SimulatedEndToEnd(t *testing.T) {
	log := logger.NewWithWriter("error", &bytes.Buffer{})
	ctx := context.Background()
	accounts, _ := newTestAccountService(t, memory.NewKVStore())
	engine, err := NewSettlementEngine(100, false, log)
	require.NoError(t, err)
	proc := processor.NewSimulated(domain.ChargeOutcomeSucceeded)
	be := backend.NewSimulated(log)
	provisioner := NewProvisioner(proc, be, testProvisionerConfig, log)
	onboarding := NewOnboardingService(accounts, provisioner, log)
	checkout := NewCheckoutService(accounts, engine, proc, be, NewTransferOrchestrator(be, "usd", log), testCheckoutConfig, log)

	m := registerDemo(t, accounts)
	payout := validPayout()
	payout.AutoTransferEnabled = true
	m, err = onboarding.LinkPayoutAccount(ctx, m, payout)
	require.NoError(t, err)
	require.True(t, m.SubAccount.Provisioned())

	attempt, err := checkout.Pay(ctx, m, "100.00")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateSucceeded, attempt.State)
	assert.Equal(t, m.SubAccount.ID, attempt.Route.SubAccountID)
	require.NotNil(t, attempt.Transfer)
	assert.Equal(t, int64(9900), attempt.Transfer.AmountMinorUnits)
	assert.Equal(t, 1, be.Payouts())
}
