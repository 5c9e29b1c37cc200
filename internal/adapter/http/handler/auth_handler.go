package handler

import (
	"net/http"

	"storefront-settlement/internal/adapter/http/dto"
	"storefront-settlement/internal/core/domain"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, sign-in and sign-out.
type AuthHandler struct {
	accounts ports.AccountService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	m, err := h.accounts.Register(c.Request.Context(), ports.RegisterRequest{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		MerchantName:    req.MerchantName,
	})
	respondMerchant(c, http.StatusCreated, m, err)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	m, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	respondMerchant(c, http.StatusOK, m, err)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.accounts.ClearSession(c.Request.Context())
	response.Result(c, http.StatusOK, gin.H{"message": "signed out"}, err)
}

// respondMerchant sends m with any non-fatal warnings, or the error when
// there is no merchant to show.
func respondMerchant(c *gin.Context, status int, m *domain.Merchant, err error) {
	if m == nil {
		if err == nil {
			err = apperror.ErrNoSession()
		}
		response.Error(c, err)
		return
	}
	response.Result(c, status, dto.FromMerchant(m), err)
}

// HealthCheck handles GET /health and pings the configured store backend.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
