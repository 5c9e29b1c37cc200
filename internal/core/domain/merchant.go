package domain

import (
	"strings"
	"time"
)

// SubAccountKind is the processor-side account type backing a merchant.
type SubAccountKind string

const (
	SubAccountKindStandard SubAccountKind = "standard"
	SubAccountKindExpress  SubAccountKind = "express"
	SubAccountKindCustom   SubAccountKind = "custom"
)

// PayoutAccount is the bank account a merchant is paid out to.
type PayoutAccount struct {
	HolderName          string `json:"holder_name"`
	AccountNumber       string `json:"account_number"`
	RoutingCode         string `json:"routing_code"`
	Linked              bool   `json:"linked"`
	AutoTransferEnabled bool   `json:"auto_transfer_enabled"`
	ProcessorToken      string `json:"processor_token,omitempty"`
}

// HasBankDetails reports whether all three bank fields are non-blank.
func (p PayoutAccount) HasBankDetails() bool {
	return strings.TrimSpace(p.HolderName) != "" &&
		strings.TrimSpace(p.AccountNumber) != "" &&
		strings.TrimSpace(p.RoutingCode) != ""
}

// SameBankDetails reports whether o points at the same bank account.
func (p PayoutAccount) SameBankDetails(o PayoutAccount) bool {
	return p.HolderName == o.HolderName &&
		p.AccountNumber == o.AccountNumber &&
		p.RoutingCode == o.RoutingCode
}

// MaskedAccountNumber returns the account number with all but the last four
// digits hidden.
func (p PayoutAccount) MaskedAccountNumber() string {
	n := len(p.AccountNumber)
	if n <= 4 {
		return p.AccountNumber
	}
	return strings.Repeat("*", n-4) + p.AccountNumber[n-4:]
}

// SubAccount is the merchant's identity at the payment processor.
type SubAccount struct {
	ID                 string         `json:"id,omitempty"`
	Kind               SubAccountKind `json:"kind,omitempty"`
	OnboardingComplete bool           `json:"onboarding_complete"`
}

// Provisioned reports whether the processor has issued an identifier.
func (s SubAccount) Provisioned() bool {
	return s.ID != ""
}

// Merchant is a registered storefront merchant. The same value is stored in
// the directory and, while signed in, in the session.
type Merchant struct {
	Username      string        `json:"username"`
	PasswordHash  string        `json:"password_hash"`
	MerchantName  string        `json:"merchant_name"`
	PayoutAccount PayoutAccount `json:"payout_account"`
	SubAccount    SubAccount    `json:"sub_account"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CanAutoTransfer reports whether a successful charge should be followed by
// a payout to the merchant's bank account.
func (m *Merchant) CanAutoTransfer() bool {
	return m.PayoutAccount.AutoTransferEnabled && m.PayoutAccount.Linked
}

// Clone returns a copy that shares no mutable state with m.
func (m *Merchant) Clone() *Merchant {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
