package handler

import (
	"net/http"

	"storefront-settlement/internal/adapter/http/dto"
	"storefront-settlement/internal/adapter/http/middleware"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles quotes and payments.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Quote handles POST /api/v1/checkout/quote.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	q, err := h.checkout.Quote(c.Request.Context(), middleware.Merchant(c), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromQuote(q))
}

// Pay handles POST /api/v1/checkout.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	attempt, err := h.checkout.Pay(c.Request.Context(), middleware.Merchant(c), req.Amount)
	if attempt == nil || (err != nil && !apperror.IsWarning(err)) {
		response.Error(c, err)
		return
	}
	response.Result(c, http.StatusCreated, dto.FromAttempt(attempt), err)
}
