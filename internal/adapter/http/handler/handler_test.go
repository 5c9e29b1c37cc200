package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/internal/core/ports/mocks"
	"storefront-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerMocks struct {
	accounts   *mocks.MockAccountService
	onboarding *mocks.MockOnboardingService
	checkout   *mocks.MockCheckoutService
}

func newTestRouter(t *testing.T, checkers ...ports.HealthChecker) (*gin.Engine, routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := routerMocks{
		accounts:   mocks.NewMockAccountService(ctrl),
		onboarding: mocks.NewMockOnboardingService(ctrl),
		checkout:   mocks.NewMockCheckoutService(ctrl),
	}
	r := SetupRouter(RouterDeps{
		Accounts:       m.accounts,
		Onboarding:     m.onboarding,
		Checkout:       m.checkout,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return r, m
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func demoMerchant() *domain.Merchant {
	return &domain.Merchant{
		Username:     "demo",
		PasswordHash: "$argon2id$hash",
		MerchantName: "Demo Store",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// --- Auth ---

func TestRegister_Success(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().Register(gomock.Any(), ports.RegisterRequest{
		Username:        "demo",
		Password:        "password",
		ConfirmPassword: "password",
		MerchantName:    "Demo Store",
	}).Return(demoMerchant(), nil)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username":         "demo",
		"password":         "password",
		"confirm_password": "password",
		"merchant_name":    " Demo Store ",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "demo", data["username"])
	assert.NotContains(t, w.Body.String(), "argon2id")
	assert.NotContains(t, resp, "warnings")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegister_PersistenceWarning(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(demoMerchant(), apperror.PersistenceWarning(errors.New("disk full")))

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": "demo", "password": "password", "confirm_password": "password", "merchant_name": "Demo Store",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	warnings := resp["warnings"].([]interface{})
	require.Len(t, warnings, 1)
	assert.Equal(t, "STORE_001", warnings[0].(map[string]interface{})["code"])
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       gin.H
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"binding failure", gin.H{"username": "demo"}, nil, http.StatusBadRequest, "VAL_000"},
		{"unsafe username", gin.H{"username": "de mo", "password": "p", "confirm_password": "p", "merchant_name": "D"}, nil, http.StatusBadRequest, "VAL_000"},
		{"duplicate", gin.H{"username": "demo", "password": "p", "confirm_password": "p", "merchant_name": "D"}, apperror.ErrDuplicateUsername(), http.StatusConflict, "AUTH_002"},
		{"mismatch", gin.H{"username": "demo", "password": "p", "confirm_password": "q", "merchant_name": "D"}, apperror.ErrPasswordMismatch(), http.StatusBadRequest, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			if tt.svcErr != nil {
				m.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tt.svcErr)
			}

			w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp["error_code"])
		})
	}
}

func TestLogin(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().Authenticate(gomock.Any(), "demo", "password").Return(demoMerchant(), nil)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "demo", "password": "password"})
	assert.Equal(t, http.StatusOK, w.Code)

	m.accounts.EXPECT().Authenticate(gomock.Any(), "demo", "wrong").Return(nil, apperror.ErrInvalidCredentials())
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "demo", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", resp["error_code"])
}

func TestLogout(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().ClearSession(gomock.Any()).Return(nil)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Session ---

func TestSession(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().Current().Return(nil)
	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", resp["error_code"])

	m.accounts.EXPECT().Current().Return(demoMerchant())
	w, resp = doJSON(t, r, http.MethodGet, "/api/v1/session", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Demo Store", resp["data"].(map[string]interface{})["merchant_name"])
}

func TestRestoreSession(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().RestoreSession(gomock.Any()).Return(nil, nil)
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/session/restore", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", resp["error_code"])

	m.accounts.EXPECT().RestoreSession(gomock.Any()).
		Return(demoMerchant(), apperror.ErrConsistency(errors.New("diverged")))
	w, resp = doJSON(t, r, http.MethodPost, "/api/v1/session/restore", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	warnings := resp["warnings"].([]interface{})
	assert.Equal(t, "CONS_001", warnings[0].(map[string]interface{})["code"])
}

// --- Payout account ---

func TestUpdatePayoutAccount(t *testing.T) {
	r, m := newTestRouter(t)
	merchant := demoMerchant()

	linked := demoMerchant()
	linked.PayoutAccount = domain.PayoutAccount{HolderName: "Jordan Doe", AccountNumber: "000123456789", RoutingCode: "110000000", Linked: true}
	linked.SubAccount = domain.SubAccount{ID: "acct_1", Kind: domain.SubAccountKindExpress}

	m.accounts.EXPECT().Current().Return(merchant)
	m.onboarding.EXPECT().LinkPayoutAccount(gomock.Any(), merchant, domain.PayoutAccount{
		HolderName:    "Jordan Doe",
		AccountNumber: "000123456789",
		RoutingCode:   "110000000",
	}).Return(linked, nil)

	w, resp := doJSON(t, r, http.MethodPut, "/api/v1/payout-account", gin.H{
		"holder_name": "Jordan Doe", "account_number": "000123456789", "routing_code": "110000000",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	payout := resp["data"].(map[string]interface{})["payout_account"].(map[string]interface{})
	assert.Equal(t, "********6789", payout["account_number"])
	assert.Equal(t, true, payout["linked"])
}

func TestUpdatePayoutAccount_KeepsPunctuation(t *testing.T) {
	r, m := newTestRouter(t)
	merchant := demoMerchant()

	want := domain.PayoutAccount{
		HolderName:    "O'Brien & Sons",
		AccountNumber: "000123456789",
		RoutingCode:   "110000000",
	}
	linked := demoMerchant()
	linked.PayoutAccount = want
	linked.PayoutAccount.Linked = true

	m.accounts.EXPECT().Current().Return(merchant)
	m.onboarding.EXPECT().LinkPayoutAccount(gomock.Any(), merchant, want).Return(linked, nil)

	w, resp := doJSON(t, r, http.MethodPut, "/api/v1/payout-account", gin.H{
		"holder_name": " O'Brien & Sons ", "account_number": "000123456789", "routing_code": "110000000",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	payout := resp["data"].(map[string]interface{})["payout_account"].(map[string]interface{})
	assert.Equal(t, "O'Brien & Sons", payout["holder_name"])
}

func TestUpdatePayoutAccount_InvalidBankDetails(t *testing.T) {
	r, m := newTestRouter(t)

	m.accounts.EXPECT().Current().Return(demoMerchant())
	m.onboarding.EXPECT().LinkPayoutAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidBankDetails())

	w, resp := doJSON(t, r, http.MethodPut, "/api/v1/payout-account", gin.H{"holder_name": "Jordan Doe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", resp["error_code"])
}

// --- Checkout ---

func TestCheckoutQuote(t *testing.T) {
	r, m := newTestRouter(t)
	merchant := demoMerchant()

	m.accounts.EXPECT().Current().Return(merchant)
	m.checkout.EXPECT().Quote(gomock.Any(), merchant, "100.00").Return(&ports.Quote{
		AmountMinorUnits: 10000,
		Currency:         "usd",
		Split:            domain.Split{GrossAmount: 10000, FeeAmount: 100, MerchantAmount: 9900, FeeRateBasisPoints: 100},
		Route:            domain.Route{Kind: domain.RouteFeeSplit, SubAccountID: "acct_1", FeeAmount: 100},
	}, nil)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout/quote", gin.H{"amount": "100.00"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "FEE_SPLIT", data["route"])
	assert.Equal(t, "1.00", data["split"].(map[string]interface{})["fee_display"])
}

func TestCheckoutPay(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		r, m := newTestRouter(t)
		attempt := domain.NewPaymentAttempt("demo", "usd")
		require.NoError(t, attempt.Advance(domain.PaymentStateValidated))
		require.NoError(t, attempt.Advance(domain.PaymentStateRouteSelected))
		require.NoError(t, attempt.Advance(domain.PaymentStateChargeRequested))
		require.NoError(t, attempt.Advance(domain.PaymentStateSucceeded))

		m.accounts.EXPECT().Current().Return(demoMerchant())
		m.checkout.EXPECT().Pay(gomock.Any(), gomock.Any(), "12.50").Return(attempt, nil)

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout", gin.H{"amount": "12.50"})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "SUCCEEDED", resp["data"].(map[string]interface{})["state"])
	})

	t.Run("declined", func(t *testing.T) {
		r, m := newTestRouter(t)
		attempt := domain.NewPaymentAttempt("demo", "usd")
		attempt.Fail("declined")

		m.accounts.EXPECT().Current().Return(demoMerchant())
		m.checkout.EXPECT().Pay(gomock.Any(), gomock.Any(), "12.50").
			Return(attempt, apperror.ErrChargeFailed(errors.New("card declined")))

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checkout", gin.H{"amount": "12.50"})
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "PROC_002", resp["error_code"])
	})

	t.Run("missing amount", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.accounts.EXPECT().Current().Return(demoMerchant())

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/checkout", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// --- Health / docs ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t, stubChecker{name: "sqlite"})
	w, resp := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])

	r, _ = newTestRouter(t, stubChecker{name: "redis", err: errors.New("connection refused")})
	w, resp = doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", resp["status"])
}

func TestSwaggerSpec(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/checkout")
}
