package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/PSM-BookingService/internal/api/handlers"
)

// SupplierIDKey ключ контекста с ID поставщика из JWT токена
const SupplierIDKey contextKey = "supplierID"

// SupplierClaims полезная нагрузка токена поставщика
type SupplierClaims struct {
	SupplierID int64 `json:"supplierId"`
	jwt.RegisteredClaims
}

// SupplierAuth проверяет Bearer токен поставщика. Если маршрут содержит
// параметр {supplierId}, он должен совпадать с ID из токена.
func SupplierAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "Bearer token is required")
				return
			}
			rawToken := strings.TrimPrefix(header, "Bearer ")

			claims := &SupplierClaims{}
			token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || claims.SupplierID <= 0 {
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			// Поставщик может работать только со своими ресурсами
			if rawID, ok := mux.Vars(r)["supplierId"]; ok {
				pathID, err := strconv.ParseInt(rawID, 10, 64)
				if err != nil || pathID != claims.SupplierID {
					handlers.RespondForbidden(w, "token does not grant access to this supplier")
					return
				}
			}

			ctx := context.WithValue(r.Context(), SupplierIDKey, claims.SupplierID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SupplierIDFromContext возвращает ID поставщика, положенный SupplierAuth
func SupplierIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(SupplierIDKey).(int64)
	return id, ok
}
