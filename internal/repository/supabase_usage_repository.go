package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finance-ai-advisor/internal/domain"
)

// SupabaseUsageRepository implements domain.UsageRepository against the
// ai_usage table (one row per user).
type SupabaseUsageRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSupabaseUsageRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.UsageRepository {
	return &SupabaseUsageRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

type usageRow struct {
	UserID    string    `json:"user_id"`
	Count     int       `json:"count"`
	LastReset time.Time `json:"last_reset"`
	Plan      string    `json:"plan"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *usageRow) toDomain() *domain.UsageRecord {
	return &domain.UsageRecord{
		UserID:    r.UserID,
		Count:     r.Count,
		LastReset: r.LastReset,
		Plan:      r.Plan,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetUsage returns the user's usage row, or (nil, nil) when no row exists yet.
// A missing row means the user has never consumed the feature; a failed query
// is an error so callers can fail closed instead of handing out a full quota.
func (r *SupabaseUsageRepository) GetUsage(ctx context.Context, userID string, token string) (*domain.UsageRecord, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	resp, _, err := client.From("ai_usage").
		Select("*", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	var rows []usageRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal usage: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDomain(), nil
}

// CommitUsage charges one gated action through the increment_ai_usage
// Postgres function. The function applies the pending reset and the increment
// in a single statement, so two in-flight requests for the same user cannot
// both slip under the ceiling. It returns the post-commit row, which is the
// only state callers may project remaining-quota figures from.
func (r *SupabaseUsageRepository) CommitUsage(ctx context.Context, userID, plan string, resetNeeded bool, now time.Time, token string) (*domain.UsageRecord, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	params := map[string]interface{}{
		"p_user_id": userID,
		"p_plan":    plan,
		"p_reset":   resetNeeded,
		"p_now":     now.UTC().Format(time.RFC3339),
	}

	// Rpc returns the raw JSON body as a string in supabase-go v0.0.4.
	resp := client.Rpc("increment_ai_usage", "", params)
	if resp == "" {
		return nil, fmt.Errorf("increment_ai_usage returned empty response")
	}

	var rows []usageRow
	if err := json.Unmarshal([]byte(resp), &rows); err != nil {
		// The function returns a single row, not an array, when declared
		// RETURNS ai_usage; accept both shapes.
		var row usageRow
		if err2 := json.Unmarshal([]byte(resp), &row); err2 != nil {
			return nil, fmt.Errorf("failed to unmarshal usage commit: %w", err)
		}
		return row.toDomain(), nil
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("increment_ai_usage returned no row")
	}
	return rows[0].toDomain(), nil
}
