package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// CheckoutConfig holds how charges are presented to the shopper.
type CheckoutConfig struct {
	Currency            string
	MerchantDisplayName string
}

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	accounts  ports.AccountService
	engine    ports.SettlementEngine
	processor ports.Processor
	backend   ports.Backend
	transfers ports.TransferOrchestrator
	cfg       CheckoutConfig
	available bool
	log       zerolog.Logger
}

// NewCheckoutService creates a CheckoutServiceImpl. Processor availability
// is read once here.
func NewCheckoutService(
	accounts ports.AccountService,
	engine ports.SettlementEngine,
	processor ports.Processor,
	backend ports.Backend,
	transfers ports.TransferOrchestrator,
	cfg CheckoutConfig,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	available := processor != nil && processor.Available()
	if !available {
		log.Warn().Msg("payment processor unavailable, checkout disabled")
	}
	return &CheckoutServiceImpl{
		accounts:  accounts,
		engine:    engine,
		processor: processor,
		backend:   backend,
		transfers: transfers,
		cfg:       cfg,
		available: available,
		log:       log,
	}
}

// Quote returns the split and route a charge of amountInput would take.
func (c *CheckoutServiceImpl) Quote(_ context.Context, merchant *domain.Merchant, amountInput string) (*ports.Quote, error) {
	if merchant == nil {
		return nil, apperror.ErrNoSession()
	}
	amount, err := c.engine.ValidateAmount(amountInput)
	if err != nil {
		return nil, err
	}
	minor := c.engine.ToMinorUnits(amount)
	split, err := c.engine.ComputeSplit(minor, c.engine.FeeRateBasisPoints())
	if err != nil {
		return nil, err
	}
	return &ports.Quote{
		AmountMinorUnits: minor,
		Currency:         c.cfg.Currency,
		Split:            split,
		Route:            c.engine.SelectRoute(merchant, split),
	}, nil
}

// Pay runs one payment attempt to a terminal state. The attempt is returned
// whenever it was started, including on failure. A Canceled attempt is not
// an error.
func (c *CheckoutServiceImpl) Pay(ctx context.Context, merchant *domain.Merchant, amountInput string) (*domain.PaymentAttempt, error) {
	if merchant == nil {
		return nil, apperror.ErrNoSession()
	}
	if !c.available {
		return nil, apperror.ErrProcessorUnavailable()
	}

	attempt := domain.NewPaymentAttempt(merchant.Username, c.cfg.Currency)
	log := c.log.With().Str("attempt_id", attempt.ID.String()).Str("username", merchant.Username).Logger()

	amount, err := c.engine.ValidateAmount(amountInput)
	if err != nil {
		attempt.Fail("invalid amount")
		return attempt, err
	}
	attempt.AmountMinorUnits = c.engine.ToMinorUnits(amount)
	if err := attempt.Advance(domain.PaymentStateValidated); err != nil {
		return attempt, apperror.InternalError(err)
	}

	split, err := c.engine.ComputeSplit(attempt.AmountMinorUnits, c.engine.FeeRateBasisPoints())
	if err != nil {
		attempt.Fail("fee split failed")
		return attempt, err
	}
	route := c.engine.SelectRoute(merchant, split)
	attempt.Split = split
	attempt.Route = route
	if err := attempt.Advance(domain.PaymentStateRouteSelected); err != nil {
		return attempt, apperror.InternalError(err)
	}

	log.Info().
		Str("route", string(route.Kind)).
		Int64("amount", split.GrossAmount).
		Int64("fee_amount", split.FeeAmount).
		Int64("merchant_amount", split.MerchantAmount).
		Int("fee_rate_bps", split.FeeRateBasisPoints).
		Msg("fee breakdown")

	chargeReq := ports.ChargeRequest{AmountMinorUnits: split.GrossAmount, Currency: c.cfg.Currency}
	uiCfg := ports.ChargeUIConfig{
		MerchantDisplayName: c.cfg.MerchantDisplayName,
		AmountMinorUnits:    split.GrossAmount,
		Currency:            c.cfg.Currency,
	}
	if route.IsFeeSplit() {
		fee := route.FeeAmount
		chargeReq.SubAccountID = route.SubAccountID
		chargeReq.FeeAmount = fee
		uiCfg.FeeAmount = &fee
	}

	secret, err := c.backend.CreateChargeWithFee(ctx, chargeReq)
	if err != nil {
		log.Error().Err(err).Msg("charge creation failed")
		attempt.Fail("charge creation failed")
		return attempt, apperror.ErrProcessorRejected(fmt.Errorf("create charge: %w", err))
	}
	uiCfg.ClientSecret = secret

	if err := c.processor.InitChargeUI(ctx, uiCfg); err != nil {
		log.Error().Err(err).Msg("payment UI init failed")
		attempt.Fail("payment UI init failed")
		return attempt, apperror.ErrChargeFailed(fmt.Errorf("init payment UI: %w", err))
	}
	if err := attempt.Advance(domain.PaymentStateChargeRequested); err != nil {
		return attempt, apperror.InternalError(err)
	}

	outcome, err := c.processor.PresentChargeUI(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("charge failed")
		attempt.Fail(err.Error())
		return attempt, apperror.ErrChargeFailed(err)
	}

	switch outcome {
	case domain.ChargeOutcomeSucceeded:
		if err := attempt.Advance(domain.PaymentStateSucceeded); err != nil {
			return attempt, apperror.InternalError(err)
		}
	case domain.ChargeOutcomeCanceled:
		if err := attempt.Advance(domain.PaymentStateCanceled); err != nil {
			return attempt, apperror.InternalError(err)
		}
		log.Info().Msg("charge canceled")
		return attempt, nil
	default:
		attempt.Fail("charge declined")
		return attempt, apperror.ErrChargeFailed(fmt.Errorf("outcome %s", outcome))
	}

	log.Info().Int64("amount", split.GrossAmount).Msg("charge succeeded")
	return attempt, c.settle(ctx, log, merchant, attempt)
}

// settle runs the post-charge side effects. Their failures never change the
// attempt's Succeeded state; only warnings are returned.
func (c *CheckoutServiceImpl) settle(ctx context.Context, log zerolog.Logger, merchant *domain.Merchant, attempt *domain.PaymentAttempt) error {
	var warn error

	if attempt.Route.IsFeeSplit() && !merchant.SubAccount.OnboardingComplete {
		updated, err := c.accounts.MarkOnboardingComplete(ctx, merchant)
		switch {
		case err == nil:
			merchant = updated
		case apperror.IsWarning(err):
			merchant = updated
			warn = err
		default:
			log.Error().Err(err).Msg("onboarding flag not updated")
		}
	}

	if merchant.CanAutoTransfer() && merchant.SubAccount.Provisioned() && attempt.Split.MerchantAmount > 0 {
		receipt, err := c.transfers.InitiateTransfer(ctx, merchant.SubAccount.ID, attempt.Split.MerchantAmount)
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				attempt.TransferError = appErr.Message
			} else {
				attempt.TransferError = err.Error()
			}
			log.Warn().Err(err).Msg("auto-transfer failed, charge stands")
		} else {
			attempt.Transfer = receipt
		}
	}

	return warn
}
