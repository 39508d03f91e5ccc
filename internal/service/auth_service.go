// Package service contains the service layer for the Employee Directory API
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// tokenTTL is the fixed lifetime of an issued session token.
const tokenTTL = time.Hour

var (
	// ErrInvalidInput is returned when userName or password is empty.
	ErrInvalidInput = errors.New("userName and password are required")

	// ErrInvalidCredentials is returned on any login mismatch. An absent
	// account and a wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenClaims are the claims embedded in a session token
type TokenClaims struct {
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}

// AuthService handles account registration, credential verification and
// session token lifecycle
type AuthService struct {
	repo      *repository.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new service for the auth API
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:      repository.NewAccountRepository(db),
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register hashes the password and persists a new account. The returned
// account never carries the hash back to the caller.
func (s *AuthService) Register(userName, password string) (*models.AccountModel, error) {
	if userName == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	account := &models.AccountModel{
		UserName:     userName,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return account, nil
}

// Login verifies the credentials and issues a signed session token
func (s *AuthService) Login(userName, password string) (string, error) {
	account, err := s.repo.GetAccountByUserName(userName)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(account.UserName)
}

// GenerateToken issues an HS256 token asserting the userName
func (s *AuthService) GenerateToken(userName string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken checks the signature and expiry of a token string against
// the shared secret and returns the embedded claims
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	return VerifyToken(s.jwtSecret, tokenString)
}

// VerifyToken parses and validates a token string with the given secret.
// Used directly by the authorization middleware.
func VerifyToken(secret, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected token claims")
	}
	return claims, nil
}
