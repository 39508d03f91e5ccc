// Package response contains response utility functions and types
package response

import (
	"github.com/labstack/echo/v4"
)

// Error types reported to clients. The HTTP status carries the semantics;
// the type string lets clients branch without parsing messages.
const (
	DuplicateAccountException = "DuplicateAccountException"
	AuthenticationException   = "AuthenticationException"
	AuthorizationException    = "AuthorizationException"
	NotFoundException         = "NotFoundException"
	InputException            = "InputException"
	ServerException           = "ServerException"
)

// ErrorBody represents the standard API error structure
type ErrorBody struct {
	Status    string `json:"status"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

// ErrorResponse sends an error JSON response
func ErrorResponse(c echo.Context, httpStatus int, errorType, message string) error {
	return c.JSON(httpStatus, ErrorBody{
		Status:    "error",
		ErrorType: errorType,
		Message:   message,
	})
}
