// Package models contains the models for the Employee Directory API
package models

import (
	"time"

	"github.com/lib/pq"
)

// TableName is the name of the table for employees
const EmployeesTableName = "employees"

// EmployeeModel represents a directory record.
// Image is an opaque URL to an externally hosted asset.
type EmployeeModel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Image       string         `json:"image"`
	Name        string         `json:"name"`
	Email       string         `gorm:"index" json:"email"`
	Mobile      string         `json:"mobile"`
	Designation string         `json:"designation"`
	Gender      string         `json:"gender"`
	Courses     pq.StringArray `gorm:"type:text[]" json:"courses"`
	CreateDate  time.Time      `gorm:"autoCreateTime" json:"createDate"`
}

// TableName specifies the table name for the Employee model
func (EmployeeModel) TableName() string {
	return EmployeesTableName
}

// EmployeeParams is the request body for the create and update endpoints.
// Both paths accept the plural `courses` field.
type EmployeeParams struct {
	Image       string   `json:"image"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Mobile      string   `json:"mobile"`
	Designation string   `json:"designation"`
	Gender      string   `json:"gender"`
	Courses     []string `json:"courses"`
}

// EmployeeFilters are the optional, independently combinable clauses of a
// filtered search. ID and CreateDate arrive as strings and are coerced.
type EmployeeFilters struct {
	Name       string `json:"Name"`
	Email      string `json:"Email"`
	ID         string `json:"ID"`
	CreateDate string `json:"createDate"`
}

// SearchEmployeesParams is the request body for the POST /employees/filter endpoint
type SearchEmployeesParams struct {
	Filters *EmployeeFilters `json:"filters"`
	Search  string           `json:"search"`
}

// EmailCheckParams is the request body for the POST /employees/email-check endpoint
type EmailCheckParams struct {
	Email string `json:"email"`
}
