package handler

import (
	"net/http"

	"storefront-settlement/internal/adapter/http/dto"
	"storefront-settlement/internal/adapter/http/middleware"
	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// MerchantHandler handles the signed-in merchant's profile and payout
// account.
type MerchantHandler struct {
	accounts   ports.AccountService
	onboarding ports.OnboardingService
}

// NewMerchantHandler creates a new merchant handler.
func NewMerchantHandler(accounts ports.AccountService, onboarding ports.OnboardingService) *MerchantHandler {
	return &MerchantHandler{accounts: accounts, onboarding: onboarding}
}

// Session handles GET /api/v1/session.
func (h *MerchantHandler) Session(c *gin.Context) {
	response.OK(c, dto.FromMerchant(middleware.Merchant(c)))
}

// RestoreSession handles POST /api/v1/session/restore. It reloads the
// persisted session and reconciles it with the directory.
func (h *MerchantHandler) RestoreSession(c *gin.Context) {
	m, err := h.accounts.RestoreSession(c.Request.Context())
	respondMerchant(c, http.StatusOK, m, err)
}

// UpdatePayoutAccount handles PUT /api/v1/payout-account.
func (h *MerchantHandler) UpdatePayoutAccount(c *gin.Context) {
	var req dto.PayoutAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	m, err := h.onboarding.LinkPayoutAccount(c.Request.Context(), middleware.Merchant(c), domain.PayoutAccount{
		HolderName:          req.HolderName,
		AccountNumber:       req.AccountNumber,
		RoutingCode:         req.RoutingCode,
		AutoTransferEnabled: req.AutoTransferEnabled,
	})
	respondMerchant(c, http.StatusOK, m, err)
}
