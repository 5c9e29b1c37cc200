package ports

import (
	"context"

	"storefront-settlement/internal/core/domain"
)

//go:generate mockgen -source=external.go -destination=mocks/mock_external.go -package=mocks

// Processor is the payment-processor SDK capability. The core never handles
// payment methods itself.
type Processor interface {
	// Available reports whether the SDK can be used at all. Services check
	// it once, at construction.
	Available() bool
	CreatePayoutToken(ctx context.Context, req PayoutTokenRequest) (string, error)
	InitChargeUI(ctx context.Context, cfg ChargeUIConfig) error
	PresentChargeUI(ctx context.Context) (domain.ChargeOutcome, error)
}

// PayoutTokenRequest holds the bank details tokenized by the processor.
type PayoutTokenRequest struct {
	HolderName    string
	AccountNumber string
	RoutingCode   string
	Country       string
	Currency      string
}

// ChargeUIConfig configures the processor's hosted payment UI.
type ChargeUIConfig struct {
	MerchantDisplayName string
	AmountMinorUnits    int64
	Currency            string
	FeeAmount           *int64 // nil for direct charges
	ClientSecret        string
}

// Backend holds the server-side operations of the storefront.
type Backend interface {
	CreateSubAccount(ctx context.Context, req SubAccountRequest) (*domain.SubAccount, error)
	// CreateChargeWithFee returns the client secret the payment UI confirms.
	CreateChargeWithFee(ctx context.Context, req ChargeRequest) (string, error)
	// CreatePayout returns the payout receipt id.
	CreatePayout(ctx context.Context, req PayoutRequest) (string, error)
}

// SubAccountRequest holds the details needed to open a sub-account.
type SubAccountRequest struct {
	Username     string
	MerchantName string
	Kind         domain.SubAccountKind
	Country      string
	Currency     string
	PayoutToken  string
}

// ChargeRequest describes a charge. SubAccountID is empty and FeeAmount zero
// for direct charges.
type ChargeRequest struct {
	AmountMinorUnits int64
	Currency         string
	SubAccountID     string
	FeeAmount        int64
}

// PayoutRequest moves funds from a sub-account to its linked bank account.
type PayoutRequest struct {
	SubAccountID     string
	AmountMinorUnits int64
	Currency         string
}
