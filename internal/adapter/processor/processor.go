package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrUnavailable is returned by every call on an Unavailable processor.
	ErrUnavailable = errors.New("payment processor unavailable")
	// ErrNotInitialized is returned when the payment UI is presented before
	// it was configured.
	ErrNotInitialized = errors.New("payment UI not initialized")
	// ErrDeclined is the simulated processor's failure.
	ErrDeclined = errors.New("card declined")
)

// ParseOutcome maps a config value to a charge outcome.
func ParseOutcome(s string) (domain.ChargeOutcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "succeeded":
		return domain.ChargeOutcomeSucceeded, nil
	case "canceled", "cancelled":
		return domain.ChargeOutcomeCanceled, nil
	case "failed":
		return domain.ChargeOutcomeFailed, nil
	default:
		return "", fmt.Errorf("unknown charge outcome %q", s)
	}
}

// Simulated is an in-process stand-in for the processor SDK. The payment UI
// resolves to a fixed outcome instead of waiting for a shopper.
type Simulated struct {
	mu      sync.Mutex
	outcome domain.ChargeOutcome
	pending *ports.ChargeUIConfig
}

// NewSimulated creates a simulated processor whose payment UI always
// resolves to outcome.
func NewSimulated(outcome domain.ChargeOutcome) *Simulated {
	return &Simulated{outcome: outcome}
}

func (p *Simulated) Available() bool { return true }

// CreatePayoutToken tokenizes bank details. Blank details are rejected the
// way the real SDK rejects them.
func (p *Simulated) CreatePayoutToken(ctx context.Context, req ports.PayoutTokenRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.HolderName == "" || req.AccountNumber == "" || req.RoutingCode == "" {
		return "", fmt.Errorf("tokenize bank account: missing bank details")
	}
	if req.Country == "" || req.Currency == "" {
		return "", fmt.Errorf("tokenize bank account: country and currency are required")
	}
	return "btok_" + compactID(), nil
}

// InitChargeUI stores the configuration for the next PresentChargeUI call.
func (p *Simulated) InitChargeUI(ctx context.Context, cfg ports.ChargeUIConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.AmountMinorUnits <= 0 {
		return fmt.Errorf("init payment UI: amount must be positive")
	}
	if cfg.ClientSecret == "" {
		return fmt.Errorf("init payment UI: client secret is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	c := cfg
	p.pending = &c
	return nil
}

// PresentChargeUI consumes the pending configuration and reports the
// configured outcome.
func (p *Simulated) PresentChargeUI(ctx context.Context) (domain.ChargeOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChargeOutcomeFailed, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return domain.ChargeOutcomeFailed, ErrNotInitialized
	}
	p.pending = nil

	if p.outcome == domain.ChargeOutcomeFailed {
		return domain.ChargeOutcomeFailed, ErrDeclined
	}
	return p.outcome, nil
}

// Unavailable is the processor used when no SDK is present.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) CreatePayoutToken(context.Context, ports.PayoutTokenRequest) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) InitChargeUI(context.Context, ports.ChargeUIConfig) error {
	return ErrUnavailable
}

func (Unavailable) PresentChargeUI(context.Context) (domain.ChargeOutcome, error) {
	return domain.ChargeOutcomeFailed, ErrUnavailable
}

func compactID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}
