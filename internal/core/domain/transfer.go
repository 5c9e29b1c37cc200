package domain

import "time"

// TransferReceipt confirms a payout from a sub-account to the merchant's bank.
type TransferReceipt struct {
	ID               string    `json:"id"`
	SubAccountID     string    `json:"sub_account_id"`
	AmountMinorUnits int64     `json:"amount"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"created_at"`
}
