package models

import "time"

// LoginRequest запрос на вход поставщика
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ с токеном
type LoginResponse struct {
	SupplierID int64     `json:"supplierId"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
