package ports

import (
	"context"

	"storefront-settlement/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// RegisterRequest holds input for merchant registration.
type RegisterRequest struct {
	Username        string
	Password        string
	ConfirmPassword string
	MerchantName    string
}

// SeedMerchant is a merchant inserted into an empty directory slot at startup.
type SeedMerchant struct {
	Username     string
	Password     string
	MerchantName string
}

// AccountService owns the merchant directory and the active session.
//
// Mutating methods may return a non-nil merchant together with a non-fatal
// error (apperror.IsWarning): the change was applied in memory but not
// fully persisted.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Merchant, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Merchant, error)
	// RestoreSession returns a nil merchant when there is no usable session.
	// A non-nil error is then at most a consistency warning.
	RestoreSession(ctx context.Context) (*domain.Merchant, error)
	Current() *domain.Merchant
	UpdatePayoutAccount(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*domain.Merchant, error)
	AttachSubAccount(ctx context.Context, merchant *domain.Merchant, sub domain.SubAccount, payoutToken string) (*domain.Merchant, error)
	MarkOnboardingComplete(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error)
	ClearSession(ctx context.Context) error
}

// ProvisionResult is the outcome of a provisioning call.
type ProvisionResult struct {
	SubAccount  domain.SubAccount
	PayoutToken string
	// Reused is true when the merchant already had a sub-account and no
	// external call was made.
	Reused bool
}

// Provisioner obtains a processor sub-account for a merchant.
type Provisioner interface {
	Provision(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*ProvisionResult, error)
}

// SettlementEngine validates amounts, splits fees and picks a route.
type SettlementEngine interface {
	ValidateAmount(input string) (decimal.Decimal, error)
	ToMinorUnits(amount decimal.Decimal) int64
	ComputeSplit(grossMinorUnits int64, feeRateBasisPoints int) (domain.Split, error)
	SelectRoute(merchant *domain.Merchant, split domain.Split) domain.Route
	FeeRateBasisPoints() int
}

// TransferOrchestrator pays a sub-account balance out to the merchant's bank.
type TransferOrchestrator interface {
	InitiateTransfer(ctx context.Context, subAccountID string, amountMinorUnits int64) (*domain.TransferReceipt, error)
}

// Quote previews a charge without contacting the processor.
type Quote struct {
	AmountMinorUnits int64
	Currency         string
	Split            domain.Split
	Route            domain.Route
}

// CheckoutService runs a payment attempt end to end.
type CheckoutService interface {
	Quote(ctx context.Context, merchant *domain.Merchant, amountInput string) (*Quote, error)
	Pay(ctx context.Context, merchant *domain.Merchant, amountInput string) (*domain.PaymentAttempt, error)
}

// OnboardingService links a payout account and provisions the sub-account.
type OnboardingService interface {
	LinkPayoutAccount(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*domain.Merchant, error)
}
