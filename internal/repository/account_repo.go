// Package repository contains the repository layer for the Employee Directory API
package repository

import (
	"errors"

	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AccountRepository is the database repository for operator accounts
type AccountRepository struct {
	DB *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount inserts a new account. The userName column is the primary
// key, so a duplicate insert surfaces as ErrAccountExists.
func (r *AccountRepository) CreateAccount(account *models.AccountModel) error {
	err := r.DB.Create(account).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAccountExists
		}
		return err
	}
	return nil
}

// GetAccountByUserName gets an account by its userName
func (r *AccountRepository) GetAccountByUserName(userName string) (*models.AccountModel, error) {
	var account models.AccountModel
	err := r.DB.Where("user_name = ?", userName).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// CountAccounts returns the number of registered accounts
func (r *AccountRepository) CountAccounts() (int64, error) {
	var count int64
	err := r.DB.Model(&models.AccountModel{}).Count(&count).Error
	return count, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
