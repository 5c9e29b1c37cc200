package service

import (
	"context"
	"errors"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// OnboardingServiceImpl implements ports.OnboardingService.
type OnboardingServiceImpl struct {
	accounts    ports.AccountService
	provisioner ports.Provisioner
	log         zerolog.Logger
}

// NewOnboardingService creates an OnboardingServiceImpl.
func NewOnboardingService(accounts ports.AccountService, provisioner ports.Provisioner, log zerolog.Logger) *OnboardingServiceImpl {
	return &OnboardingServiceImpl{accounts: accounts, provisioner: provisioner, log: log}
}

// LinkPayoutAccount saves the payout account, then provisions and attaches a
// sub-account. A reused sub-account is attached again only to record a new
// payout token. When provisioning fails the payout account stays linked and
// the merchant is returned alongside the error. Non-fatal warnings from each
// step are joined.
func (s *OnboardingServiceImpl) LinkPayoutAccount(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*domain.Merchant, error) {
	var warnings []error

	updated, err := s.accounts.UpdatePayoutAccount(ctx, merchant, payout)
	if err != nil {
		if !apperror.IsWarning(err) {
			return nil, err
		}
		warnings = append(warnings, err)
	}

	res, err := s.provisioner.Provision(ctx, updated, updated.PayoutAccount)
	if err != nil {
		s.log.Warn().Err(err).Str("username", updated.Username).Msg("payout account linked without sub-account")
		return updated, err
	}
	if res.Reused && res.PayoutToken == updated.PayoutAccount.ProcessorToken {
		return updated, errors.Join(warnings...)
	}

	attached, err := s.accounts.AttachSubAccount(ctx, updated, res.SubAccount, res.PayoutToken)
	if err != nil {
		if !apperror.IsWarning(err) {
			return updated, err
		}
		warnings = append(warnings, err)
	}

	s.log.Info().
		Str("username", attached.Username).
		Str("sub_account_id", attached.SubAccount.ID).
		Msg("merchant onboarded")
	return attached, errors.Join(warnings...)
}
