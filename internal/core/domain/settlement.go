package domain

// BasisPointsDenominator is the number of basis points in 100%.
const BasisPointsDenominator = 10000

// Charge is a single charge request. It is never persisted.
type Charge struct {
	GrossAmountMinorUnits int64
	FeeRateBasisPoints    int
	MerchantSubAccountID  string
}

// Split is the division of a gross amount between the platform and the
// merchant. FeeAmount + MerchantAmount always equals GrossAmount.
type Split struct {
	GrossAmount        int64 `json:"gross_amount"`
	FeeAmount          int64 `json:"fee_amount"`
	MerchantAmount     int64 `json:"merchant_amount"`
	FeeRateBasisPoints int   `json:"fee_rate_bps"`
}

// RouteKind says where a charge's funds go.
type RouteKind string

const (
	// RouteDirect charges on the platform account with no fee split.
	RouteDirect RouteKind = "DIRECT"
	// RouteFeeSplit charges on behalf of the merchant's sub-account and
	// retains the fee for the platform.
	RouteFeeSplit RouteKind = "FEE_SPLIT"
)

// Route is the routing decision for a charge.
type Route struct {
	Kind         RouteKind `json:"kind"`
	SubAccountID string    `json:"sub_account_id,omitempty"`
	FeeAmount    int64     `json:"fee_amount"`
}

// IsFeeSplit reports whether the route carries a platform fee.
func (r Route) IsFeeSplit() bool {
	return r.Kind == RouteFeeSplit
}
