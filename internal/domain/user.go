package domain

import (
	"time"
)

// SupabaseUser represents a user from Supabase Auth
type SupabaseUser struct {
	ID           string
	Email        string
	UserMetadata map[string]interface{}
	CreatedAt    string
	UpdatedAt    string
}

// UserProfile is the application-side profile row for a user: the active
// subscription plan, when the account was created and whether the account has
// been disabled. The plan here is authoritative for gating; the copy on the
// usage row is display only.
type UserProfile struct {
	UserID          string    `json:"user_id"`
	Plan            string    `json:"plan"`
	RegisteredAt    time.Time `json:"registered_at"`
	AccountDisabled bool      `json:"account_disabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}
