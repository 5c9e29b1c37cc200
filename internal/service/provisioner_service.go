package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// bankDetails is validated before anything is sent to the processor.
type bankDetails struct {
	HolderName    string `validate:"required,max=100"`
	AccountNumber string `validate:"required,max=34"`
	RoutingCode   string `validate:"required,max=34"`
}

// ProvisionerConfig carries the market the sub-account is opened in.
type ProvisionerConfig struct {
	Country  string
	Currency string
	Kind     domain.SubAccountKind
}

// ProvisionerImpl implements ports.Provisioner.
type ProvisionerImpl struct {
	processor ports.Processor
	backend   ports.Backend
	cfg       ProvisionerConfig
	validate  *validator.Validate
	available bool
	log       zerolog.Logger
}

// NewProvisioner creates a provisioner. Processor availability is read once
// here; an unavailable processor makes every new provisioning fail.
func NewProvisioner(processor ports.Processor, backend ports.Backend, cfg ProvisionerConfig, log zerolog.Logger) *ProvisionerImpl {
	if cfg.Kind == "" {
		cfg.Kind = domain.SubAccountKindExpress
	}
	available := processor != nil && processor.Available()
	if !available {
		log.Warn().Msg("payment processor unavailable, sub-account provisioning disabled")
	}
	return &ProvisionerImpl{
		processor: processor,
		backend:   backend,
		cfg:       cfg,
		validate:  validator.New(),
		available: available,
		log:       log,
	}
}

// Provision returns the merchant's existing sub-account unchanged, or opens a
// new one from the given bank details. An existing sub-account whose payout
// token was dropped because the bank details changed gets a token for the
// new details; the sub-account itself is never replaced.
func (p *ProvisionerImpl) Provision(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*ports.ProvisionResult, error) {
	if merchant == nil {
		return nil, apperror.ErrNoSession()
	}
	if merchant.SubAccount.Provisioned() {
		res := &ports.ProvisionResult{
			SubAccount:  merchant.SubAccount,
			PayoutToken: merchant.PayoutAccount.ProcessorToken,
			Reused:      true,
		}
		if res.PayoutToken != "" || !payout.HasBankDetails() {
			return res, nil
		}
		token, err := p.tokenize(ctx, merchant, payout)
		if err != nil {
			return nil, err
		}
		res.PayoutToken = token
		p.log.Info().
			Str("username", merchant.Username).
			Str("sub_account_id", res.SubAccount.ID).
			Msg("payout destination re-tokenized")
		return res, nil
	}

	token, err := p.tokenize(ctx, merchant, payout)
	if err != nil {
		return nil, err
	}

	sub, err := p.backend.CreateSubAccount(ctx, ports.SubAccountRequest{
		Username:     merchant.Username,
		MerchantName: merchant.MerchantName,
		Kind:         p.cfg.Kind,
		Country:      p.cfg.Country,
		Currency:     p.cfg.Currency,
		PayoutToken:  token,
	})
	if err != nil {
		p.log.Error().Err(err).Str("username", merchant.Username).Msg("sub-account creation failed")
		return nil, apperror.ErrProcessorRejected(fmt.Errorf("create sub-account: %w", err))
	}
	if sub == nil || sub.ID == "" {
		p.log.Error().Str("username", merchant.Username).Msg("backend returned no sub-account")
		return nil, apperror.ErrProcessorRejected(errors.New("create sub-account: empty response"))
	}

	result := *sub
	result.OnboardingComplete = false
	p.log.Info().
		Str("username", merchant.Username).
		Str("sub_account_id", result.ID).
		Str("kind", string(result.Kind)).
		Msg("sub-account provisioned")

	return &ports.ProvisionResult{SubAccount: result, PayoutToken: token}, nil
}

// tokenize validates the bank details and exchanges them for a processor
// payout token.
func (p *ProvisionerImpl) tokenize(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (string, error) {
	details := bankDetails{
		HolderName:    strings.TrimSpace(payout.HolderName),
		AccountNumber: strings.TrimSpace(payout.AccountNumber),
		RoutingCode:   strings.TrimSpace(payout.RoutingCode),
	}
	if err := p.validate.Struct(details); err != nil {
		return "", apperror.ErrInvalidBankDetails()
	}
	if !p.available {
		return "", apperror.ErrProcessorUnavailable()
	}

	token, err := p.processor.CreatePayoutToken(ctx, ports.PayoutTokenRequest{
		HolderName:    details.HolderName,
		AccountNumber: details.AccountNumber,
		RoutingCode:   details.RoutingCode,
		Country:       p.cfg.Country,
		Currency:      p.cfg.Currency,
	})
	if err != nil {
		p.log.Error().Err(err).Str("username", merchant.Username).Msg("payout token request failed")
		return "", apperror.ErrProcessorRejected(fmt.Errorf("create payout token: %w", err))
	}
	return token, nil
}
