package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentState is a step in the lifecycle of one payment attempt.
type PaymentState string

const (
	PaymentStateAmountEntry     PaymentState = "AMOUNT_ENTRY"
	PaymentStateValidated       PaymentState = "VALIDATED"
	PaymentStateRouteSelected   PaymentState = "ROUTE_SELECTED"
	PaymentStateChargeRequested PaymentState = "CHARGE_REQUESTED"
	PaymentStateSucceeded       PaymentState = "SUCCEEDED"
	PaymentStateCanceled        PaymentState = "CANCELED"
	PaymentStateFailed          PaymentState = "FAILED"
)

// paymentTransitions lists the states reachable from each state. Any
// pre-terminal state may fail.
var paymentTransitions = map[PaymentState][]PaymentState{
	PaymentStateAmountEntry:     {PaymentStateValidated, PaymentStateFailed},
	PaymentStateValidated:       {PaymentStateRouteSelected, PaymentStateFailed},
	PaymentStateRouteSelected:   {PaymentStateChargeRequested, PaymentStateFailed},
	PaymentStateChargeRequested: {PaymentStateSucceeded, PaymentStateCanceled, PaymentStateFailed},
}

// IsTerminal returns true if no further transition is possible.
func (s PaymentState) IsTerminal() bool {
	return s == PaymentStateSucceeded || s == PaymentStateCanceled || s == PaymentStateFailed
}

// CanTransition reports whether to is reachable from s in one step.
func (s PaymentState) CanTransition(to PaymentState) bool {
	for _, next := range paymentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ChargeOutcome is what the processor's payment UI reports back.
type ChargeOutcome string

const (
	ChargeOutcomeSucceeded ChargeOutcome = "SUCCEEDED"
	ChargeOutcomeCanceled  ChargeOutcome = "CANCELED"
	ChargeOutcomeFailed    ChargeOutcome = "FAILED"
)

// PaymentAttempt tracks one charge from amount entry to a terminal state.
type PaymentAttempt struct {
	ID               uuid.UUID        `json:"id"`
	Username         string           `json:"username"`
	State            PaymentState     `json:"state"`
	AmountMinorUnits int64            `json:"amount"`
	Currency         string           `json:"currency"`
	Split            Split            `json:"split"`
	Route            Route            `json:"route"`
	FailureReason    string           `json:"failure_reason,omitempty"`
	Transfer         *TransferReceipt `json:"transfer,omitempty"`
	TransferError    string           `json:"transfer_error,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

// NewPaymentAttempt starts an attempt in the AmountEntry state.
func NewPaymentAttempt(username, currency string) *PaymentAttempt {
	return &PaymentAttempt{
		ID:        uuid.New(),
		Username:  username,
		State:     PaymentStateAmountEntry,
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
	}
}

// Advance moves the attempt to the next state, rejecting illegal jumps.
func (p *PaymentAttempt) Advance(to PaymentState) error {
	if !p.State.CanTransition(to) {
		return fmt.Errorf("payment %s: illegal transition %s -> %s", p.ID, p.State, to)
	}
	p.State = to
	if to.IsTerminal() {
		now := time.Now().UTC()
		p.CompletedAt = &now
	}
	return nil
}

// Fail moves a non-terminal attempt to Failed and records why.
func (p *PaymentAttempt) Fail(reason string) {
	if p.State.IsTerminal() {
		return
	}
	p.FailureReason = reason
	_ = p.Advance(PaymentStateFailed)
}
