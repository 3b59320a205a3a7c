package domain

import "time"

// SupplierCredentials is the login record for a supplier account.
// Password hashes are bcrypt; the plaintext never leaves the login handler.
type SupplierCredentials struct {
	SupplierID   int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
