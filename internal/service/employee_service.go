// Package service contains the service layer for the Employee Directory API
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/dealsdray/empdirapi/pkg/utils/dblogger"
	"github.com/dealsdray/empdirapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// employeeListCacheKey holds the serialized result of GetAllEmployees
	employeeListCacheKey = "employees:all"

	// employeeListCacheTTL bounds staleness if an invalidation is lost
	employeeListCacheTTL = 60 * time.Second
)

// EmployeeService is the service for the employee API
type EmployeeService struct {
	repo        *repository.EmployeeRepository
	redisClient *redis.Client
	auditLogger *dblogger.Logger
}

// NewEmployeeService creates a new service for the employee API
func NewEmployeeService(db *gorm.DB, redisClient *redis.Client) *EmployeeService {
	return &EmployeeService{
		repo:        repository.NewEmployeeRepository(db),
		redisClient: redisClient,
		auditLogger: dblogger.New(db, "employee"),
	}
}

// GetAllEmployees returns all employees, serving from the Redis cache when
// possible. Cache failures degrade to a plain database read.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]models.EmployeeModel, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, employeeListCacheKey).Result()
		if err == nil {
			var employees []models.EmployeeModel
			if err := json.Unmarshal([]byte(cached), &employees); err == nil {
				return employees, nil
			}
		}
	}

	employees, err := s.repo.GetAllEmployees()
	if err != nil {
		return nil, err
	}

	s.cacheEmployeeList(ctx, employees)
	return employees, nil
}

// GetEmployeeByID gets an employee by id
func (s *EmployeeService) GetEmployeeByID(id uint) (*models.EmployeeModel, error) {
	return s.repo.GetEmployeeByID(id)
}

// CreateEmployee persists a new employee record
func (s *EmployeeService) CreateEmployee(ctx context.Context, params *models.EmployeeParams) (*models.EmployeeModel, error) {
	employee := &models.EmployeeModel{
		Image:       params.Image,
		Name:        params.Name,
		Email:       params.Email,
		Mobile:      params.Mobile,
		Designation: params.Designation,
		Gender:      params.Gender,
		Courses:     params.Courses,
	}

	if err := s.repo.CreateEmployee(employee); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.auditLogger.Record(dblogger.ActionCreate, "employee created", map[string]interface{}{
		"id":    employee.ID,
		"email": employee.Email,
	})
	return employee, nil
}

// UpdateEmployee replaces the listed fields of the employee with the given id
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, params *models.EmployeeParams) (*models.EmployeeModel, error) {
	employee, err := s.repo.UpdateEmployee(id, params)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.auditLogger.Record(dblogger.ActionUpdate, "employee updated", map[string]interface{}{
		"id":    employee.ID,
		"email": employee.Email,
	})
	return employee, nil
}

// DeleteEmployee removes the employee with the given id
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	if err := s.repo.DeleteEmployee(id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.auditLogger.Record(dblogger.ActionDelete, "employee deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

// EmailExists reports whether any employee has the given email
func (s *EmployeeService) EmailExists(email string) (bool, error) {
	return s.repo.EmailExists(email)
}

// SearchEmployees runs a filtered search over the directory
func (s *EmployeeService) SearchEmployees(params *models.SearchEmployeesParams) ([]models.EmployeeModel, error) {
	return s.repo.SearchEmployees(params.Filters, params.Search)
}

// CountEmployees returns the number of employee records
func (s *EmployeeService) CountEmployees() (int64, error) {
	return s.repo.CountEmployees()
}

func (s *EmployeeService) cacheEmployeeList(ctx context.Context, employees []models.EmployeeModel) {
	if s.redisClient == nil {
		return
	}

	serialized, err := json.Marshal(employees)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, employeeListCacheKey, serialized, employeeListCacheTTL).Err(); err != nil {
		zaplogger.Warn("failed to cache employee list", zaplogger.Fields{"error": err.Error()})
	}
}

func (s *EmployeeService) invalidateListCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, employeeListCacheKey).Err(); err != nil {
		zaplogger.Warn("failed to invalidate employee list cache", zaplogger.Fields{"error": err.Error()})
	}
}
