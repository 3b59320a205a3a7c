package domain

import "time"

// CalendarConnection links a supplier to their external calendar account.
// Tokens come from the provider's OAuth flow; the availability matcher
// never sees them, it only consumes the busy blocks the sync produces.
type CalendarConnection struct {
	SupplierID     int64
	Provider       string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt time.Time
	LastSyncedAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TokenExpired reports whether the access token needs a refresh before use.
// A small margin avoids using a token that expires mid-request.
func (c *CalendarConnection) TokenExpired(now time.Time) bool {
	return !c.TokenExpiresAt.After(now.Add(time.Minute))
}

// BusyBlock is one busy interval reported by the external calendar.
type BusyBlock struct {
	Start   time.Time
	End     time.Time
	Summary string
}
