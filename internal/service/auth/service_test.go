package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PSM-BookingService/internal/api/middleware"
	"github.com/m04kA/PSM-BookingService/internal/domain"
	supplierRepo "github.com/m04kA/PSM-BookingService/internal/infra/storage/supplier"
	"github.com/m04kA/PSM-BookingService/internal/service/auth/models"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockSupplierRepo struct {
	creds *domain.SupplierCredentials
	err   error
}

func (m *mockSupplierRepo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.SupplierCredentials, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.creds, nil
}

func testCredentials(t *testing.T, password string) *domain.SupplierCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.SupplierCredentials{
		SupplierID:   7,
		Email:        "bookings@magicmoments.example",
		PasswordHash: string(hash),
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	repo := &mockSupplierRepo{creds: testCredentials(t, "correct horse")}
	svc := NewService(repo, testSecret, time.Hour, nopLogger{})

	result, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "bookings@magicmoments.example",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.SupplierID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

	var claims middleware.SupplierClaims
	parsed, err := jwt.ParseWithClaims(result.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, int64(7), claims.SupplierID)
	assert.Equal(t, "supplier:7", claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockSupplierRepo{creds: testCredentials(t, "correct horse")}
	svc := NewService(repo, testSecret, time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "bookings@magicmoments.example",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockSupplierRepo{err: supplierRepo.ErrCredentialsNotFound}
	svc := NewService(repo, testSecret, time.Hour, nopLogger{})

	// Неизвестный email неотличим от неверного пароля
	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewService(&mockSupplierRepo{}, testSecret, time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
