package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/internal/service/auth/models"
)

// Service сервис аутентификации поставщиков
type Service struct {
	supplierRepo SupplierRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(supplierRepo SupplierRepository, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		supplierRepo: supplierRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Login проверяет email и пароль поставщика и выдает JWT
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	creds, err := s.supplierRepo.GetCredentialsByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrCredentialsNotFound) {
			s.logger.Warn("Login: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for supplier=%d", creds.SupplierID)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)

	claims := middleware.SupplierClaims{
		SupplierID: creds.SupplierID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("supplier:%d", creds.SupplierID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for supplier=%d: %v", creds.SupplierID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: supplier=%d logged in", creds.SupplierID)
	return &models.LoginResponse{
		SupplierID: creds.SupplierID,
		Token:      token,
		ExpiresAt:  expiresAt,
	}, nil
}
