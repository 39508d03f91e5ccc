// Package repository contains the repository layer for the Employee Directory API
package repository

import (
	"errors"
	"strconv"
	"time"

	"github.com/dealsdray/empdirapi/internal/models"
	"gorm.io/gorm"
)

// createDateLayouts are the accepted formats for the createDate filter value.
var createDateLayouts = []string{time.RFC3339, "2006-01-02"}

// EmployeeRepository is the database repository for employees
type EmployeeRepository struct {
	DB *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

// GetAllEmployees returns all employees in store-default order
func (r *EmployeeRepository) GetAllEmployees() ([]models.EmployeeModel, error) {
	var employees []models.EmployeeModel
	if err := r.DB.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployeeByID gets an employee by id
func (r *EmployeeRepository) GetEmployeeByID(id uint) (*models.EmployeeModel, error) {
	var employee models.EmployeeModel
	err := r.DB.First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee inserts a new employee. The store assigns ID and CreateDate.
func (r *EmployeeRepository) CreateEmployee(employee *models.EmployeeModel) error {
	return r.DB.Create(employee).Error
}

// UpdateEmployee replaces every updatable field of the employee with the
// given id and returns the updated record.
func (r *EmployeeRepository) UpdateEmployee(id uint, params *models.EmployeeParams) (*models.EmployeeModel, error) {
	employee, err := r.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	employee.Image = params.Image
	employee.Name = params.Name
	employee.Email = params.Email
	employee.Mobile = params.Mobile
	employee.Designation = params.Designation
	employee.Gender = params.Gender
	employee.Courses = params.Courses

	if err := r.DB.Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes the employee with the given id
func (r *EmployeeRepository) DeleteEmployee(id uint) error {
	result := r.DB.Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// EmailExists reports whether any employee has the given email
func (r *EmployeeRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.EmployeeModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountEmployees returns the number of employee records
func (r *EmployeeRepository) CountEmployees() (int64, error) {
	var count int64
	err := r.DB.Model(&models.EmployeeModel{}).Count(&count).Error
	return count, err
}

// SearchEmployees builds a conjunctive predicate from the optional filter
// clauses, ORs the free-text term over name and email, and returns the
// matches ordered by ascending id.
func (r *EmployeeRepository) SearchEmployees(filters *models.EmployeeFilters, search string) ([]models.EmployeeModel, error) {
	query := r.DB.Model(&models.EmployeeModel{})

	if filters != nil {
		if filters.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filters.Name+"%")
		}
		if filters.Email != "" {
			query = query.Where("email ILIKE ?", "%"+filters.Email+"%")
		}
		if filters.ID != "" {
			id, err := strconv.ParseUint(filters.ID, 10, 64)
			if err != nil {
				return nil, ErrInvalidFilter
			}
			query = query.Where("id = ?", id)
		}
		if filters.CreateDate != "" {
			createDate, err := parseCreateDate(filters.CreateDate)
			if err != nil {
				return nil, ErrInvalidFilter
			}
			query = query.Where("create_date >= ?", createDate)
		}
	}

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var employees []models.EmployeeModel
	if err := query.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func parseCreateDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range createDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
