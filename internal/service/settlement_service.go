package service

import (
	"strings"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxAmount keeps minor-unit amounts well inside int64.
var maxAmount = decimal.New(1, 13)

// SettlementEngineImpl implements ports.SettlementEngine. It is pure: no
// store or processor access.
type SettlementEngineImpl struct {
	feeRateBps        int
	requireOnboarding bool
	log               zerolog.Logger
}

// NewSettlementEngine creates a settlement engine charging feeRateBps on
// every fee-split charge. With requireOnboarding set, merchants whose
// sub-account has not finished onboarding are charged directly.
func NewSettlementEngine(feeRateBps int, requireOnboarding bool, log zerolog.Logger) (*SettlementEngineImpl, error) {
	if feeRateBps < 0 || feeRateBps > domain.BasisPointsDenominator {
		return nil, apperror.ErrInvalidFeeRate()
	}
	return &SettlementEngineImpl{
		feeRateBps:        feeRateBps,
		requireOnboarding: requireOnboarding,
		log:               log,
	}, nil
}

// FeeRateBasisPoints returns the configured platform fee rate.
func (e *SettlementEngineImpl) FeeRateBasisPoints() int {
	return e.feeRateBps
}

// ValidateAmount parses a major-unit amount such as "12.50". Zero, negative,
// exponent notation and sub-cent precision are rejected.
func (e *SettlementEngineImpl) ValidateAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	if !d.IsPositive() || d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	if !d.Round(2).Equal(d) {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	return d, nil
}

// ToMinorUnits converts a validated major-unit amount to cents.
func (e *SettlementEngineImpl) ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// ComputeSplit divides gross between platform and merchant. The fee is
// gross × rate / 10000 rounded half up to a whole minor unit.
func (e *SettlementEngineImpl) ComputeSplit(grossMinorUnits int64, feeRateBps int) (domain.Split, error) {
	if grossMinorUnits < 0 {
		return domain.Split{}, apperror.ErrInvalidAmount()
	}
	if feeRateBps < 0 || feeRateBps > domain.BasisPointsDenominator {
		return domain.Split{}, apperror.ErrInvalidFeeRate()
	}

	fee := decimal.NewFromInt(grossMinorUnits).
		Mul(decimal.NewFromInt(int64(feeRateBps))).
		Shift(-4).
		Round(0).
		IntPart()

	return domain.Split{
		GrossAmount:        grossMinorUnits,
		FeeAmount:          fee,
		MerchantAmount:     grossMinorUnits - fee,
		FeeRateBasisPoints: feeRateBps,
	}, nil
}

// SelectRoute charges on behalf of the merchant's sub-account whenever one
// exists. Onboarding status is only consulted when requireOnboarding is set.
func (e *SettlementEngineImpl) SelectRoute(merchant *domain.Merchant, split domain.Split) domain.Route {
	if merchant == nil || !merchant.SubAccount.Provisioned() {
		return domain.Route{Kind: domain.RouteDirect}
	}
	if e.requireOnboarding && !merchant.SubAccount.OnboardingComplete {
		e.log.Debug().Str("username", merchant.Username).Msg("onboarding incomplete, charging directly")
		return domain.Route{Kind: domain.RouteDirect}
	}
	return domain.Route{
		Kind:         domain.RouteFeeSplit,
		SubAccountID: merchant.SubAccount.ID,
		FeeAmount:    split.FeeAmount,
	}
}
