package dto

import (
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for merchant registration.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password        string `json:"password" binding:"required,max=128" sanitize:"-"`
	ConfirmPassword string `json:"confirm_password" binding:"required,max=128" sanitize:"-"`
	MerchantName    string `json:"merchant_name" binding:"required,min=1,max=100"`
}

// LoginRequest is the request body for merchant login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// PayoutAccountRequest is the request body for linking a payout account.
// Field presence is checked by the account service so that a missing field
// maps to the bank-details error rather than a generic binding error.
type PayoutAccountRequest struct {
	HolderName          string `json:"holder_name" binding:"max=100"`
	AccountNumber       string `json:"account_number" binding:"max=34"`
	RoutingCode         string `json:"routing_code" binding:"max=34"`
	AutoTransferEnabled bool   `json:"auto_transfer_enabled"`
}

// CheckoutRequest carries the amount exactly as the shopper typed it,
// e.g. "12.50".
type CheckoutRequest struct {
	Amount string `json:"amount" binding:"required,max=32"`
}

// PayoutAccountResponse never exposes the full account number.
type PayoutAccountResponse struct {
	HolderName          string `json:"holder_name,omitempty"`
	AccountNumber       string `json:"account_number,omitempty"`
	RoutingCode         string `json:"routing_code,omitempty"`
	Linked              bool   `json:"linked"`
	AutoTransferEnabled bool   `json:"auto_transfer_enabled"`
}

// SubAccountResponse describes the merchant's processor sub-account.
type SubAccountResponse struct {
	ID                 string `json:"id,omitempty"`
	Kind               string `json:"kind,omitempty"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// MerchantResponse is the merchant profile returned to the storefront.
type MerchantResponse struct {
	Username      string                `json:"username"`
	MerchantName  string                `json:"merchant_name"`
	PayoutAccount PayoutAccountResponse `json:"payout_account"`
	SubAccount    SubAccountResponse    `json:"sub_account"`
	CreatedAt     string                `json:"created_at"`
}

// FromMerchant maps a domain merchant, dropping the password hash and
// processor token.
func FromMerchant(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		Username:     m.Username,
		MerchantName: m.MerchantName,
		PayoutAccount: PayoutAccountResponse{
			HolderName:          m.PayoutAccount.HolderName,
			AccountNumber:       m.PayoutAccount.MaskedAccountNumber(),
			RoutingCode:         m.PayoutAccount.RoutingCode,
			Linked:              m.PayoutAccount.Linked,
			AutoTransferEnabled: m.PayoutAccount.AutoTransferEnabled,
		},
		SubAccount: SubAccountResponse{
			ID:                 m.SubAccount.ID,
			Kind:               string(m.SubAccount.Kind),
			OnboardingComplete: m.SubAccount.OnboardingComplete,
		},
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// SplitResponse is a fee breakdown in minor units plus display strings.
type SplitResponse struct {
	GrossAmount        int64  `json:"gross_amount"`
	FeeAmount          int64  `json:"fee_amount"`
	MerchantAmount     int64  `json:"merchant_amount"`
	FeeRateBasisPoints int    `json:"fee_rate_bps"`
	GrossDisplay       string `json:"gross_display"`
	FeeDisplay         string `json:"fee_display"`
	MerchantDisplay    string `json:"merchant_display"`
}

func fromSplit(s domain.Split) SplitResponse {
	return SplitResponse{
		GrossAmount:        s.GrossAmount,
		FeeAmount:          s.FeeAmount,
		MerchantAmount:     s.MerchantAmount,
		FeeRateBasisPoints: s.FeeRateBasisPoints,
		GrossDisplay:       FormatMinorUnits(s.GrossAmount),
		FeeDisplay:         FormatMinorUnits(s.FeeAmount),
		MerchantDisplay:    FormatMinorUnits(s.MerchantAmount),
	}
}

// FormatMinorUnits renders cents as a two-decimal major-unit string.
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

// QuoteResponse previews a charge.
type QuoteResponse struct {
	Amount       int64         `json:"amount"`
	Currency     string        `json:"currency"`
	Split        SplitResponse `json:"split"`
	Route        string        `json:"route"`
	SubAccountID string        `json:"sub_account_id,omitempty"`
}

func FromQuote(q *ports.Quote) QuoteResponse {
	return QuoteResponse{
		Amount:       q.AmountMinorUnits,
		Currency:     q.Currency,
		Split:        fromSplit(q.Split),
		Route:        string(q.Route.Kind),
		SubAccountID: q.Route.SubAccountID,
	}
}

// TransferResponse is the receipt of an automatic payout.
type TransferResponse struct {
	ID           string `json:"id"`
	SubAccountID string `json:"sub_account_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	CreatedAt    string `json:"created_at"`
}

// PaymentResponse is the result of a payment attempt.
type PaymentResponse struct {
	ID            string            `json:"id"`
	State         string            `json:"state"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Split         SplitResponse     `json:"split"`
	Route         string            `json:"route"`
	FailureReason string            `json:"failure_reason,omitempty"`
	Transfer      *TransferResponse `json:"transfer,omitempty"`
	TransferError string            `json:"transfer_error,omitempty"`
	CreatedAt     string            `json:"created_at"`
	CompletedAt   *string           `json:"completed_at,omitempty"`
}

func FromAttempt(a *domain.PaymentAttempt) PaymentResponse {
	resp := PaymentResponse{
		ID:            a.ID.String(),
		State:         string(a.State),
		Amount:        a.AmountMinorUnits,
		Currency:      a.Currency,
		Split:         fromSplit(a.Split),
		Route:         string(a.Route.Kind),
		FailureReason: a.FailureReason,
		TransferError: a.TransferError,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if a.CompletedAt != nil {
		s := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	if a.Transfer != nil {
		resp.Transfer = &TransferResponse{
			ID:           a.Transfer.ID,
			SubAccountID: a.Transfer.SubAccountID,
			Amount:       a.Transfer.AmountMinorUnits,
			Currency:     a.Transfer.Currency,
			CreatedAt:    a.Transfer.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
