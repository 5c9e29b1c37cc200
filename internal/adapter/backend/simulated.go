package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnknownSubAccount is returned for charges and payouts that reference a
// sub-account the backend never created.
var ErrUnknownSubAccount = errors.New("unknown sub-account")

// Simulated runs the storefront backend operations in process. It keeps
// enough state to reject charges and payouts against unknown sub-accounts.
type Simulated struct {
	mu          sync.Mutex
	subAccounts map[string]ports.SubAccountRequest
	charges     map[string]ports.ChargeRequest
	payouts     map[string]ports.PayoutRequest
	newID       func() string
	log         zerolog.Logger
}

// Option configures a Simulated backend.
type Option func(*Simulated)

// WithIDGenerator replaces the random id suffix generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Simulated) { s.newID = fn }
}

// NewSimulated creates an empty simulated backend.
func NewSimulated(log zerolog.Logger, opts ...Option) *Simulated {
	s := &Simulated{
		subAccounts: make(map[string]ports.SubAccountRequest),
		charges:     make(map[string]ports.ChargeRequest),
		payouts:     make(map[string]ports.PayoutRequest),
		newID: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		},
		log: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSubAccount opens a sub-account. Onboarding is never complete on
// creation.
func (s *Simulated) CreateSubAccount(ctx context.Context, req ports.SubAccountRequest) (*domain.SubAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Username == "" || req.PayoutToken == "" {
		return nil, fmt.Errorf("create sub-account: username and payout token are required")
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.SubAccountKindExpress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := "acct_" + s.newID()
	if _, exists := s.subAccounts[id]; exists {
		return nil, fmt.Errorf("create sub-account: id collision on %s", id)
	}
	s.subAccounts[id] = req

	s.log.Debug().Str("sub_account_id", id).Str("username", req.Username).Msg("sub-account created")

	return &domain.SubAccount{ID: id, Kind: kind, OnboardingComplete: false}, nil
}

// RestoreSubAccounts re-registers sub-accounts created by an earlier run,
// keyed by id with the owning username as value. Known ids are left alone.
func (s *Simulated) RestoreSubAccounts(owners map[string]string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	restored := 0
	for id, username := range owners {
		if id == "" {
			continue
		}
		if _, exists := s.subAccounts[id]; exists {
			continue
		}
		s.subAccounts[id] = ports.SubAccountRequest{Username: username}
		restored++
	}
	if restored > 0 {
		s.log.Info().Int("sub_accounts", restored).Msg("sub-accounts restored")
	}
	return restored
}

// CreateChargeWithFee records a charge and returns its client secret.
func (s *Simulated) CreateChargeWithFee(ctx context.Context, req ports.ChargeRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.AmountMinorUnits <= 0 {
		return "", fmt.Errorf("create charge: amount must be positive")
	}
	if req.FeeAmount < 0 || req.FeeAmount > req.AmountMinorUnits {
		return "", fmt.Errorf("create charge: fee %d outside [0, %d]", req.FeeAmount, req.AmountMinorUnits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.SubAccountID != "" {
		if _, ok := s.subAccounts[req.SubAccountID]; !ok {
			return "", fmt.Errorf("create charge: %w: %s", ErrUnknownSubAccount, req.SubAccountID)
		}
	} else if req.FeeAmount != 0 {
		return "", fmt.Errorf("create charge: fee requires a sub-account")
	}

	id := "pi_" + s.newID()
	s.charges[id] = req
	return id + "_secret_" + s.newID(), nil
}

// CreatePayout records a payout and returns its receipt id.
func (s *Simulated) CreatePayout(ctx context.Context, req ports.PayoutRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.AmountMinorUnits <= 0 {
		return "", fmt.Errorf("create payout: amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subAccounts[req.SubAccountID]; !ok {
		return "", fmt.Errorf("create payout: %w: %s", ErrUnknownSubAccount, req.SubAccountID)
	}

	id := "po_" + s.newID()
	s.payouts[id] = req

	s.log.Debug().
		Str("payout_id", id).
		Str("sub_account_id", req.SubAccountID).
		Int64("amount", req.AmountMinorUnits).
		Time("at", time.Now().UTC()).
		Msg("payout created")

	return id, nil
}

// Payouts returns the number of payouts created so far.
func (s *Simulated) Payouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payouts)
}
