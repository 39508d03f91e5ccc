// Package models contains the models for the Employee Directory API
package models

import (
	"time"
)

const AccountsTableName = "accounts"

// AccountModel represents an operator account.
// PasswordHash is a bcrypt digest and is never serialized to clients.
type AccountModel struct {
	UserName     string    `gorm:"primaryKey" json:"userName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (AccountModel) TableName() string {
	return AccountsTableName
}

// RegisterParams is the request body for the POST /register endpoint
type RegisterParams struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// LoginParams is the request body for the POST /login endpoint
type LoginParams struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}
