package response

import (
	"errors"
	"net/http"
	"time"

	"storefront-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	Warnings  []Warning   `json:"warnings,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Warning is a non-fatal condition reported next to successful data, such
// as a change that was applied but not persisted.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	send(c, http.StatusOK, data, nil)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	send(c, http.StatusCreated, data, nil)
}

// Result sends data with status unless err is fatal, in which case it sends
// the error. Non-fatal errors are listed under "warnings".
func Result(c *gin.Context, status int, data interface{}, err error) {
	if err != nil && !apperror.IsWarning(err) {
		Error(c, err)
		return
	}
	send(c, status, data, Warnings(err))
}

func send(c *gin.Context, status int, data interface{}, warnings []Warning) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		Warnings:  warnings,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Warnings collects every non-fatal AppError in err, including errors
// combined with errors.Join.
func Warnings(err error) []Warning {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []Warning
		for _, e := range joined.Unwrap() {
			out = append(out, Warnings(e)...)
		}
		return out
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Warning() {
		return []Warning{{Code: appErr.Code, Message: appErr.Message}}
	}
	return nil
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: getRequestID(c),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
