package delivery

import (
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Details string `json:"details"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse renders err through the fixed kind-to-status mapping.
// The envelope's error code mirrors the HTTP status.
func ErrorResponse(c *gin.Context, err error) {
	status := statusFor(domain.KindOf(err))
	c.JSON(status, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: status, Details: err.Error()},
	})
}

func BadRequest(c *gin.Context, details string) {
	ErrorResponse(c, domain.NewError(domain.KindValidation, details))
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindDuplicate, domain.KindReference:
		return http.StatusBadRequest
	case domain.KindNotFound, domain.KindEmpty:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
