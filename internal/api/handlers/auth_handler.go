// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/dealsdray/empdirapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for the auth API
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new operator account
func (h *AuthHandler) Register(c echo.Context) error {
	var params models.RegisterParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	account, err := h.service.Register(params.UserName, params.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "`userName` and `password` are required")
		case errors.Is(err, repository.ErrAccountExists):
			return response.ErrorResponse(c, http.StatusBadRequest, response.DuplicateAccountException, "user already exists")
		default:
			return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error creating user")
		}
	}

	return c.JSON(http.StatusOK, account)
}

// Login authenticates an account and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var params models.LoginParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	token, err := h.service.Login(params.UserName, params.Password)
	if err != nil {
		// Absent account and wrong password report identically
		return response.ErrorResponse(c, http.StatusUnauthorized, response.AuthenticationException, "invalid credentials")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
