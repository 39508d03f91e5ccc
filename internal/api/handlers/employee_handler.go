// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/dealsdray/empdirapi/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// EmployeeHandler is the handler for the employee API
type EmployeeHandler struct {
	service *service.EmployeeService
}

// NewEmployeeHandler creates a new handler for the employee API
func NewEmployeeHandler(service *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// GetAllEmployees returns all employee records
func (h *EmployeeHandler) GetAllEmployees(c echo.Context) error {
	employees, err := h.service.GetAllEmployees(c.Request().Context())
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error fetching employees")
	}
	if employees == nil {
		employees = []models.EmployeeModel{}
	}
	return c.JSON(http.StatusOK, employees)
}

// GetEmployeeByID returns a single employee record
func (h *EmployeeHandler) GetEmployeeByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "`id` must be an integer")
	}

	employee, err := h.service.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return response.ErrorResponse(c, http.StatusNotFound, response.NotFoundException, "employee not found")
		}
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error fetching employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// CreateEmployee persists a new employee record
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var params models.EmployeeParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	employee, err := h.service.CreateEmployee(c.Request().Context(), &params)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error creating employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// UpdateEmployee replaces the listed fields of an employee record
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "`id` must be an integer")
	}

	var params models.EmployeeParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	employee, err := h.service.UpdateEmployee(c.Request().Context(), id, &params)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return response.ErrorResponse(c, http.StatusBadRequest, response.NotFoundException, "employee not found")
		}
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error updating employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee record
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "`id` must be an integer")
	}

	if err := h.service.DeleteEmployee(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return response.ErrorResponse(c, http.StatusBadRequest, response.NotFoundException, "employee not found")
		}
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error deleting employee")
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchEmployees runs a filtered search over the directory
func (h *EmployeeHandler) SearchEmployees(c echo.Context) error {
	var params models.SearchEmployeesParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	employees, err := h.service.SearchEmployees(&params)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidFilter) {
			return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid filter value")
		}
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error fetching employees")
	}
	if employees == nil {
		employees = []models.EmployeeModel{}
	}
	return c.JSON(http.StatusOK, employees)
}

// EmailCheck reports whether an employee with the given email exists
func (h *EmployeeHandler) EmailCheck(c echo.Context) error {
	var params models.EmailCheckParams
	if err := c.Bind(&params); err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.InputException, "invalid request body")
	}

	exists, err := h.service.EmailExists(params.Email)
	if err != nil {
		return response.ErrorResponse(c, http.StatusBadRequest, response.ServerException, "error checking email")
	}

	return c.JSON(http.StatusOK, echo.Map{"exists": exists})
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
