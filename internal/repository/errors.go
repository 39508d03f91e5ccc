// Package repository contains the repository layer for the Employee Directory API
package repository

import "errors"

var (
	// ErrAccountExists is returned when a userName is already registered.
	ErrAccountExists = errors.New("account already exists")

	// ErrEmployeeNotFound is returned when no employee matches the given id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidFilter is returned when a filter value cannot be coerced to
	// its column type (integer id, timestamp create date).
	ErrInvalidFilter = errors.New("invalid filter value")
)
