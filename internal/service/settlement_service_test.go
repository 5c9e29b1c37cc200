package service

import (
	"bytes"
	"testing"

	"storefront-settlement/internal/core/domain"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettlementEngine(t *testing.T, requireOnboarding bool) *SettlementEngineImpl {
	t.Helper()
	e, err := NewSettlementEngine(100, requireOnboarding, logger.NewWithWriter("error", &bytes.Buffer{}))
	require.NoError(t, err)
	return e
}

func TestNewSettlementEngine_RejectsFeeRate(t *testing.T) {
	for _, rate := range []int{-1, 10001} {
		e, err := NewSettlementEngine(rate, false, logger.NewWithWriter("error", &bytes.Buffer{}))
		assert.Nil(t, e)
		assert.Equal(t, "VAL_005", apperror.Code(err))
	}
}

func TestSettlementEngine_ComputeSplit(t *testing.T) {
	e := newTestSettlementEngine(t, false)

	tests := []struct {
		gross, wantFee int64
		rate           int
	}{
		{10000, 100, 100},
		{50, 1, 100},
		{49, 0, 100},
		{12345, 309, 250},
		{0, 0, 100},
		{1, 0, 0},
		{777, 777, 10000},
		{150, 2, 100},
	}
	for _, tt := range tests {
		split, err := e.ComputeSplit(tt.gross, tt.rate)
		require.NoError(t, err)
		assert.Equal(t, tt.wantFee, split.FeeAmount, "gross=%d rate=%d", tt.gross, tt.rate)
		assert.Equal(t, tt.gross-tt.wantFee, split.MerchantAmount)
		assert.Equal(t, tt.rate, split.FeeRateBasisPoints)
	}
}

func TestSettlementEngine_ComputeSplit_Conserves(t *testing.T) {
	e := newTestSettlementEngine(t, false)

	for _, rate := range []int{0, 1, 99, 100, 250, 2900, 5000, 9999, 10000} {
		for gross := int64(0); gross <= 5000; gross += 7 {
			split, err := e.ComputeSplit(gross, rate)
			require.NoError(t, err)
			assert.Equal(t, gross, split.FeeAmount+split.MerchantAmount)
			assert.GreaterOrEqual(t, split.FeeAmount, int64(0))
			assert.LessOrEqual(t, split.FeeAmount, gross)
		}
	}
}

func TestSettlementEngine_ComputeSplit_RejectsInput(t *testing.T) {
	e := newTestSettlementEngine(t, false)

	_, err := e.ComputeSplit(-1, 100)
	assert.Equal(t, "VAL_004", apperror.Code(err))
	_, err = e.ComputeSplit(100, 10001)
	assert.Equal(t, "VAL_005", apperror.Code(err))
	_, err = e.ComputeSplit(100, -5)
	assert.Equal(t, "VAL_005", apperror.Code(err))
}

func TestSettlementEngine_ValidateAmount(t *testing.T) {
	e := newTestSettlementEngine(t, false)

	valid := map[string]int64{
		"12.50":  1250,
		"1":      100,
		"0.01":   1,
		" 42.1 ": 4210,
		"12.500": 1250,
	}
	for in, want := range valid {
		d, err := e.ValidateAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, e.ToMinorUnits(d), in)
	}

	for _, in := range []string{"-5", "abc", "0", "", "0.00", "1.999", "1e3", "12,50", "10000000000000"} {
		_, err := e.ValidateAmount(in)
		assert.Equal(t, "VAL_004", apperror.Code(err), in)
	}
}

func TestSettlementEngine_ToMinorUnits(t *testing.T) {
	e := newTestSettlementEngine(t, false)
	assert.Equal(t, int64(199), e.ToMinorUnits(decimal.RequireFromString("1.99")))
	assert.Equal(t, int64(100000), e.ToMinorUnits(decimal.NewFromInt(1000)))
}

func TestSettlementEngine_SelectRoute(t *testing.T) {
	split := domain.Split{GrossAmount: 10000, FeeAmount: 100, MerchantAmount: 9900, FeeRateBasisPoints: 100}
	pending := &domain.Merchant{Username: "demo", SubAccount: domain.SubAccount{ID: "acct_1"}}
	onboarded := &domain.Merchant{Username: "demo", SubAccount: domain.SubAccount{ID: "acct_1", OnboardingComplete: true}}
	bare := &domain.Merchant{Username: "demo"}

	t.Run("default policy", func(t *testing.T) {
		e := newTestSettlementEngine(t, false)

		assert.Equal(t, domain.Route{Kind: domain.RouteDirect}, e.SelectRoute(bare, split))
		assert.Equal(t, domain.Route{Kind: domain.RouteDirect}, e.SelectRoute(nil, split))

		r := e.SelectRoute(pending, split)
		assert.True(t, r.IsFeeSplit())
		assert.Equal(t, "acct_1", r.SubAccountID)
		assert.Equal(t, int64(100), r.FeeAmount)

		assert.True(t, e.SelectRoute(onboarded, split).IsFeeSplit())
	})

	t.Run("onboarding required", func(t *testing.T) {
		e := newTestSettlementEngine(t, true)

		assert.False(t, e.SelectRoute(pending, split).IsFeeSplit())
		assert.True(t, e.SelectRoute(onboarded, split).IsFeeSplit())
	})
}
