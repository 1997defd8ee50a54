package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finance-ai-advisor/internal/domain"
)

// SupabaseProfileRepository implements domain.ProfileRepository against the
// profiles table.
type SupabaseProfileRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseProfileRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.ProfileRepository {
	return &SupabaseProfileRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// GetProfile returns the user's plan and registration date. There is no
// default row here: an account without a profile cannot be gated, so absence
// is an error, unlike usage rows.
func (r *SupabaseProfileRepository) GetProfile(ctx context.Context, userID string, token string) (*domain.UserProfile, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	resp, _, err := client.From("profiles").
		Select("user_id,plan,registered_at,account_disabled,updated_at", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var rows []struct {
		UserID          string    `json:"user_id"`
		Plan            string    `json:"plan"`
		RegisteredAt    time.Time `json:"registered_at"`
		AccountDisabled bool      `json:"account_disabled"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return &domain.UserProfile{
		UserID:          rows[0].UserID,
		Plan:            rows[0].Plan,
		RegisteredAt:    rows[0].RegisteredAt,
		AccountDisabled: rows[0].AccountDisabled,
		UpdatedAt:       rows[0].UpdatedAt,
	}, nil
}
