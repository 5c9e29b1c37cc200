package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"

	"github.com/rs/zerolog"
)

// Store keys.
const (
	keySession        = "user"
	keyIndex          = "users"
	keyPending        = "pending"
	merchantKeyPrefix = "merchant:"
)

func merchantKey(username string) string {
	return merchantKeyPrefix + username
}

// pendingWrite is the write-ahead marker stored before a multi-key update.
// It lists every write not yet known to have landed, so a later change
// extends it instead of replacing it.
type pendingWrite struct {
	Op      string             `json:"op"`
	Records []*domain.Merchant `json:"records,omitempty"`
	Index   bool               `json:"index,omitempty"`
	// Session is written as the signed-in merchant; ClearSession removes
	// the session instead. At most one of them is set.
	Session      *domain.Merchant `json:"session,omitempty"`
	ClearSession bool             `json:"clear_session,omitempty"`
}

// merge folds next into p. Later records and session operations win.
func (p pendingWrite) merge(next pendingWrite) pendingWrite {
	out := pendingWrite{
		Op:           next.Op,
		Index:        p.Index || next.Index,
		Session:      p.Session,
		ClearSession: p.ClearSession,
	}
	seen := make(map[string]int)
	for _, m := range append(append([]*domain.Merchant{}, p.Records...), next.Records...) {
		if i, ok := seen[m.Username]; ok {
			out.Records[i] = m
			continue
		}
		seen[m.Username] = len(out.Records)
		out.Records = append(out.Records, m)
	}
	if next.Session != nil || next.ClearSession {
		out.Session = next.Session
		out.ClearSession = next.ClearSession
	}
	return out
}

func (p pendingWrite) keys() int {
	n := len(p.Records)
	if p.Index {
		n++
	}
	if p.Session != nil || p.ClearSession {
		n++
	}
	return n
}

// legacyMerchant is the record shape of the old single-array directory,
// which kept the password in clear text.
type legacyMerchant struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	MerchantName  string `json:"merchantName"`
	PayoutAccount struct {
		HolderName          string `json:"holderName"`
		AccountNumber       string `json:"accountNumber"`
		RoutingCode         string `json:"routingCode"`
		Linked              bool   `json:"linked"`
		AutoTransferEnabled bool   `json:"autoTransferEnabled"`
		ProcessorToken      string `json:"processorToken"`
	} `json:"payoutAccount"`
	SubAccount struct {
		ID                 string `json:"id"`
		Kind               string `json:"kind"`
		OnboardingComplete bool   `json:"onboardingComplete"`
	} `json:"subAccount"`
}

// AccountServiceImpl implements ports.AccountService on top of a fail-soft
// key-value store. The directory and session are held in memory and every
// mutation is written through.
type AccountServiceImpl struct {
	mu        sync.Mutex
	store     ports.KeyValueStore
	hashSvc   ports.HashService
	log       zerolog.Logger
	now       func() time.Time
	directory map[string]*domain.Merchant
	order     []string
	session   *domain.Merchant
	// outstanding holds writes that failed and are still recorded in the
	// pending marker.
	outstanding *pendingWrite
}

// NewAccountService creates an AccountServiceImpl. Call Open before use.
func NewAccountService(store ports.KeyValueStore, hashSvc ports.HashService, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		store:     store,
		hashSvc:   hashSvc,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		directory: make(map[string]*domain.Merchant),
	}
}

// Open loads the directory, replays an unfinished write and inserts seeds
// whose username is not taken yet. Seeds never overwrite persisted merchants.
func (s *AccountServiceImpl) Open(ctx context.Context, seeds []ports.SeedMerchant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadDirectory(ctx)
	warn := s.replayPending(ctx)

	for _, seed := range seeds {
		username := strings.TrimSpace(seed.Username)
		if username == "" || seed.Password == "" {
			s.log.Warn().Str("username", username).Msg("skipping incomplete seed merchant")
			continue
		}
		if _, exists := s.directory[username]; exists {
			continue
		}
		hash, err := s.hashSvc.Hash(seed.Password)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("hash seed password: %w", err))
		}
		now := s.now()
		m := &domain.Merchant{
			Username:     username,
			PasswordHash: hash,
			MerchantName: strings.TrimSpace(seed.MerchantName),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.insert(m)
		if err := s.commit(ctx, pendingWrite{Op: "seed", Records: []*domain.Merchant{m}, Index: true}); err != nil {
			warn = err
		}
		s.log.Info().Str("username", username).Msg("seed merchant added")
	}

	s.log.Info().Int("merchants", len(s.directory)).Msg("merchant directory loaded")
	return warn
}

func (s *AccountServiceImpl) loadDirectory(ctx context.Context) {
	s.directory = make(map[string]*domain.Merchant)
	s.order = nil

	raw, ok := s.store.Get(ctx, keyIndex)
	if !ok {
		return
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		for _, name := range names {
			if _, dup := s.directory[name]; dup {
				continue
			}
			rec, ok := s.store.Get(ctx, merchantKey(name))
			if !ok {
				s.log.Warn().Str("username", name).Msg("indexed merchant has no record")
				continue
			}
			var m domain.Merchant
			if err := json.Unmarshal([]byte(rec), &m); err != nil || m.Username != name {
				s.log.Warn().Err(err).Str("username", name).Msg("merchant record unreadable")
				continue
			}
			s.insert(&m)
		}
		return
	}

	var legacy []legacyMerchant
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		s.log.Error().Err(err).Msg("merchant index unreadable, starting with an empty directory")
		return
	}
	s.migrateLegacy(ctx, legacy)
}

func (s *AccountServiceImpl) migrateLegacy(ctx context.Context, legacy []legacyMerchant) {
	now := s.now()
	for _, l := range legacy {
		username := strings.TrimSpace(l.Username)
		if username == "" {
			continue
		}
		if _, dup := s.directory[username]; dup {
			continue
		}
		hash, err := s.hashSvc.Hash(l.Password)
		if err != nil {
			s.log.Error().Err(err).Str("username", username).Msg("legacy merchant skipped")
			continue
		}
		m := &domain.Merchant{
			Username:     username,
			PasswordHash: hash,
			MerchantName: l.MerchantName,
			PayoutAccount: domain.PayoutAccount{
				HolderName:          l.PayoutAccount.HolderName,
				AccountNumber:       l.PayoutAccount.AccountNumber,
				RoutingCode:         l.PayoutAccount.RoutingCode,
				AutoTransferEnabled: l.PayoutAccount.AutoTransferEnabled,
				ProcessorToken:      l.PayoutAccount.ProcessorToken,
			},
			SubAccount: domain.SubAccount{
				ID:                 l.SubAccount.ID,
				Kind:               domain.SubAccountKind(l.SubAccount.Kind),
				OnboardingComplete: l.SubAccount.OnboardingComplete,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		m.PayoutAccount.Linked = l.PayoutAccount.Linked && m.PayoutAccount.HasBankDetails()
		s.insert(m)
		if !s.writeRecord(ctx, m) {
			s.log.Warn().Str("username", username).Msg("migrated merchant not persisted")
		}
	}
	if !s.writeIndex(ctx) {
		s.log.Warn().Msg("migrated merchant index not persisted")
		return
	}
	s.log.Info().Int("merchants", len(s.order)).Msg("legacy merchant directory migrated")
}

func (s *AccountServiceImpl) replayPending(ctx context.Context) error {
	raw, ok := s.store.Get(ctx, keyPending)
	if !ok {
		return nil
	}
	var p pendingWrite
	if err := json.Unmarshal([]byte(raw), &p); err != nil || !p.valid() {
		s.log.Warn().Err(err).Msg("discarding unreadable pending write")
		s.store.Remove(ctx, keyPending)
		return nil
	}

	s.log.Warn().Str("op", p.Op).Int("records", len(p.Records)).Msg("replaying interrupted write")
	for _, m := range p.Records {
		s.insert(m)
	}
	switch {
	case p.Session != nil:
		s.session = p.Session.Clone()
	case p.ClearSession:
		s.session = nil
	}
	s.outstanding = &p
	return s.commit(ctx, pendingWrite{Op: p.Op})
}

func (p pendingWrite) valid() bool {
	for _, m := range p.Records {
		if m == nil || m.Username == "" {
			return false
		}
	}
	if p.Session != nil && p.Session.Username == "" {
		return false
	}
	return p.keys() > 0
}

// insert puts m in the directory, appending to the index when new.
func (s *AccountServiceImpl) insert(m *domain.Merchant) {
	if _, exists := s.directory[m.Username]; !exists {
		s.order = append(s.order, m.Username)
	}
	s.directory[m.Username] = m
}

func (s *AccountServiceImpl) writeRecord(ctx context.Context, m *domain.Merchant) bool {
	b, _ := json.Marshal(m)
	return s.store.Set(ctx, merchantKey(m.Username), string(b))
}

func (s *AccountServiceImpl) writeIndex(ctx context.Context) bool {
	b, _ := json.Marshal(s.order)
	return s.store.Set(ctx, keyIndex, string(b))
}

func (s *AccountServiceImpl) writeSession(ctx context.Context, m *domain.Merchant) bool {
	b, _ := json.Marshal(m)
	return s.store.Set(ctx, keySession, string(b))
}

// commit persists w together with any earlier writes that have not landed.
// A change touching more than one key, or made while writes are
// outstanding, goes under the write-ahead marker. The marker is cleared
// only when every outstanding key was written, so a partial write is
// replayed on the next Open.
func (s *AccountServiceImpl) commit(ctx context.Context, w pendingWrite) error {
	if s.outstanding != nil {
		w = s.outstanding.merge(w)
	}

	marked := false
	if w.keys() > 1 || s.outstanding != nil {
		s.setMarker(ctx, w)
		marked = true
	}

	var failed []string
	for _, m := range w.Records {
		if !s.writeRecord(ctx, m) {
			failed = append(failed, merchantKey(m.Username))
		}
	}
	if w.Index && !s.writeIndex(ctx) {
		failed = append(failed, keyIndex)
	}
	switch {
	case w.Session != nil:
		if !s.writeSession(ctx, w.Session) {
			failed = append(failed, keySession)
		}
	case w.ClearSession:
		if !s.store.Remove(ctx, keySession) {
			failed = append(failed, keySession)
		}
	}

	if len(failed) > 0 {
		s.outstanding = &w
		if !marked {
			s.setMarker(ctx, w)
		}
		s.log.Warn().Str("op", w.Op).Strs("keys", failed).Msg("merchant change not fully persisted")
		return apperror.PersistenceWarning(fmt.Errorf("%s: write %s", w.Op, strings.Join(failed, ", ")))
	}

	s.outstanding = nil
	if marked {
		s.store.Remove(ctx, keyPending)
	}
	return nil
}

func (s *AccountServiceImpl) setMarker(ctx context.Context, w pendingWrite) {
	marker, _ := json.Marshal(w)
	if !s.store.Set(ctx, keyPending, string(marker)) {
		s.log.Warn().Str("op", w.Op).Msg("write-ahead marker not persisted")
	}
}

// Register creates a merchant and signs it in.
func (s *AccountServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Merchant, error) {
	username := strings.TrimSpace(req.Username)
	merchantName := strings.TrimSpace(req.MerchantName)

	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.ConfirmPassword == "" {
		missing = append(missing, "confirm_password")
	}
	if merchantName == "" {
		missing = append(missing, "merchant_name")
	}
	if len(missing) > 0 {
		return nil, apperror.ErrMissingFields(missing...)
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperror.ErrPasswordMismatch()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.directory[username]; exists {
		return nil, apperror.ErrDuplicateUsername()
	}

	hash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := s.now()
	m := &domain.Merchant{
		Username:     username,
		PasswordHash: hash,
		MerchantName: merchantName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.insert(m)
	s.session = m.Clone()

	warn := s.commit(ctx, pendingWrite{
		Op:      "register",
		Records: []*domain.Merchant{m},
		Index:   true,
		Session: m.Clone(),
	})
	s.log.Info().Str("username", username).Msg("merchant registered")
	return m.Clone(), warn
}

// Authenticate checks credentials against the directory and signs the
// merchant in.
func (s *AccountServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.Merchant, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.ErrInvalidCredentials()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.directory[username]
	if !ok {
		return nil, apperror.ErrInvalidCredentials()
	}
	valid, err := s.hashSvc.Verify(password, m.PasswordHash)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("stored password hash unreadable")
		return nil, apperror.ErrInvalidCredentials()
	}
	if !valid {
		return nil, apperror.ErrInvalidCredentials()
	}

	s.session = m.Clone()
	s.log.Info().Str("username", username).Msg("merchant signed in")
	warn := s.commit(ctx, pendingWrite{Op: "authenticate", Session: m.Clone()})
	return m.Clone(), warn
}

// RestoreSession reloads the persisted session, reconciling it against the
// directory.
func (s *AccountServiceImpl) RestoreSession(ctx context.Context) (*domain.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	raw, ok := s.persistedSession(ctx)
	if !ok {
		return nil, nil
	}

	var stored domain.Merchant
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.Username == "" {
		s.log.Warn().Err(err).Msg("session unreadable")
		return nil, nil
	}

	dir, ok := s.directory[stored.Username]
	if !ok {
		if werr := s.commit(ctx, pendingWrite{Op: "restore_session", ClearSession: true}); werr != nil {
			s.log.Warn().Err(werr).Msg("orphan session not removed")
		}
		err := apperror.ErrConsistency(fmt.Errorf("session merchant %q is not in the directory", stored.Username))
		s.log.Error().Err(err).Msg("session cleared")
		return nil, err
	}

	s.session = dir.Clone()
	dirJSON, _ := json.Marshal(dir)
	storedJSON, _ := json.Marshal(&stored)
	if string(dirJSON) == string(storedJSON) {
		return dir.Clone(), nil
	}

	err := apperror.ErrConsistency(fmt.Errorf("session for %q differed from its directory record", stored.Username))
	s.log.Warn().Err(err).Msg("session rewritten from directory")
	if werr := s.commit(ctx, pendingWrite{Op: "restore_session", Session: dir.Clone()}); werr != nil {
		s.log.Warn().Err(werr).Str("username", stored.Username).Msg("reconciled session not persisted")
	}
	return dir.Clone(), err
}

// persistedSession reads the session key, preferring a session write that is
// still outstanding over the stale stored value.
func (s *AccountServiceImpl) persistedSession(ctx context.Context) (string, bool) {
	if p := s.outstanding; p != nil {
		switch {
		case p.ClearSession:
			return "", false
		case p.Session != nil:
			b, _ := json.Marshal(p.Session)
			return string(b), true
		}
	}
	return s.store.Get(ctx, keySession)
}

// Current returns the signed-in merchant, or nil.
func (s *AccountServiceImpl) Current() *domain.Merchant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// UpdatePayoutAccount links the merchant's bank account.
func (s *AccountServiceImpl) UpdatePayoutAccount(ctx context.Context, merchant *domain.Merchant, payout domain.PayoutAccount) (*domain.Merchant, error) {
	next := domain.PayoutAccount{
		HolderName:          strings.TrimSpace(payout.HolderName),
		AccountNumber:       strings.TrimSpace(payout.AccountNumber),
		RoutingCode:         strings.TrimSpace(payout.RoutingCode),
		AutoTransferEnabled: payout.AutoTransferEnabled,
	}
	if !next.HasBankDetails() {
		return nil, apperror.ErrInvalidBankDetails()
	}
	next.Linked = true

	return s.mutate(ctx, "update_payout_account", merchant, func(m *domain.Merchant) (bool, error) {
		if m.PayoutAccount.SameBankDetails(next) {
			next.ProcessorToken = m.PayoutAccount.ProcessorToken
		}
		m.PayoutAccount = next
		return true, nil
	})
}

// AttachSubAccount records a provisioned sub-account. An existing different
// id is never replaced.
func (s *AccountServiceImpl) AttachSubAccount(ctx context.Context, merchant *domain.Merchant, sub domain.SubAccount, payoutToken string) (*domain.Merchant, error) {
	if !sub.Provisioned() {
		return nil, apperror.Validation("sub-account id is required")
	}

	return s.mutate(ctx, "attach_sub_account", merchant, func(m *domain.Merchant) (bool, error) {
		if m.SubAccount.Provisioned() && m.SubAccount.ID != sub.ID {
			return false, apperror.ErrSubAccountConflict()
		}
		changed := m.SubAccount != sub
		m.SubAccount = sub
		if payoutToken != "" && m.PayoutAccount.ProcessorToken != payoutToken {
			m.PayoutAccount.ProcessorToken = payoutToken
			changed = true
		}
		return changed, nil
	})
}

// MarkOnboardingComplete flips the sub-account's onboarding flag.
func (s *AccountServiceImpl) MarkOnboardingComplete(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error) {
	return s.mutate(ctx, "mark_onboarding_complete", merchant, func(m *domain.Merchant) (bool, error) {
		if !m.SubAccount.Provisioned() {
			return false, apperror.Validation("merchant has no sub-account")
		}
		if m.SubAccount.OnboardingComplete {
			return false, nil
		}
		m.SubAccount.OnboardingComplete = true
		return true, nil
	})
}

// mutate applies fn to a copy of the directory record and, when fn reports a
// change, persists it to the directory and to the session if it is the
// signed-in merchant.
func (s *AccountServiceImpl) mutate(ctx context.Context, op string, merchant *domain.Merchant, fn func(m *domain.Merchant) (bool, error)) (*domain.Merchant, error) {
	if merchant == nil {
		return nil, apperror.ErrNoSession()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.directory[merchant.Username]
	if !ok {
		return nil, apperror.ErrNotFound("merchant")
	}

	updated := cur.Clone()
	changed, err := fn(updated)
	if err != nil {
		return nil, err
	}
	if !changed {
		return cur.Clone(), nil
	}
	updated.UpdatedAt = s.now()

	s.directory[updated.Username] = updated
	w := pendingWrite{Op: op, Records: []*domain.Merchant{updated}}
	if s.session != nil && s.session.Username == updated.Username {
		s.session = updated.Clone()
		w.Session = updated.Clone()
	}

	warn := s.commit(ctx, w)
	s.log.Info().Str("op", op).Str("username", updated.Username).Msg("merchant updated")
	return updated.Clone(), warn
}

// ClearSession signs the merchant out. The directory is untouched.
func (s *AccountServiceImpl) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.commit(ctx, pendingWrite{Op: "clear_session", ClearSession: true})
}

// ProvisionedSubAccounts maps every sub-account id in the directory to its
// merchant's username.
func (s *AccountServiceImpl) ProvisionedSubAccounts() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string)
	for _, name := range s.order {
		if m := s.directory[name]; m != nil && m.SubAccount.Provisioned() {
			out[m.SubAccount.ID] = name
		}
	}
	return out
}
