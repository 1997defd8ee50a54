package domain

import (
	"context"
	"time"
)

// UsageRecord tracks gated AI actions consumed by a user since the last reset.
// One row per user in the ai_usage table. The plan column is audit/display
// only; the authoritative plan always comes from the user's profile.
type UsageRecord struct {
	UserID    string    `json:"user_id"`
	Count     int       `json:"count"`
	LastReset time.Time `json:"last_reset"`
	Plan      string    `json:"plan"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccessStatus is the combined verdict of the grace gate and the entitlement
// evaluator, shaped for the client UI.
type AccessStatus struct {
	Plan               string    `json:"plan"`
	AIEnabled          bool      `json:"ai_enabled"`
	GraceActive        bool      `json:"grace_active"`
	GraceDaysRemaining int       `json:"grace_days_remaining"`
	Allowed            bool      `json:"allowed"`
	Remaining          int       `json:"remaining"`
	ResetAt            time.Time `json:"reset_at"`
}

// GoalSummary is a compact view of a savings goal for the advice prompt.
type GoalSummary struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// CategorySpend is a month-to-date spend figure for one expense category.
type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// FinanceSnapshot is the financial context the client sends with a question.
type FinanceSnapshot struct {
	MonthlyIncome   float64         `json:"monthly_income"`
	MonthlyExpenses float64         `json:"monthly_expenses"`
	SavingsTotal    float64         `json:"savings_total"`
	Goals           []GoalSummary   `json:"goals,omitempty"`
	TopCategories   []CategorySpend `json:"top_categories,omitempty"`
}

// AdviceRequest is one gated question to the AI advisor.
type AdviceRequest struct {
	Prompt   string          `json:"prompt"`
	Snapshot FinanceSnapshot `json:"snapshot"`
}

// AdviceResponse is the advisor's answer plus the post-commit quota
// projection. Remaining and ResetAt are read back from the durable row, never
// computed client-side.
type AdviceResponse struct {
	Answer    string    `json:"answer"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
	Warning   string    `json:"warning,omitempty"`
}

// Advice is the raw output of the AI provider.
type Advice struct {
	Answer     string
	TokenCount int
}

// UsageRepository persists usage counters.
type UsageRepository interface {
	// GetUsage returns the user's usage row, or (nil, nil) when the user has
	// no row yet. Transport or query failures are returned as errors so the
	// caller can fail closed instead of assuming a fresh quota.
	GetUsage(ctx context.Context, userID string, token string) (*UsageRecord, error)

	// CommitUsage atomically applies a pending reset (when resetNeeded) and
	// increments the counter by one, returning the post-commit row. The reset
	// and increment happen in a single statement at the storage layer so two
	// concurrent requests cannot both squeeze past the ceiling.
	CommitUsage(ctx context.Context, userID, plan string, resetNeeded bool, now time.Time, token string) (*UsageRecord, error)
}

// ProfileRepository reads the user's subscription plan and registration date.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string, token string) (*UserProfile, error)
}

// AdviceGenerator performs the gated action against the external AI provider.
type AdviceGenerator interface {
	Generate(ctx context.Context, req AdviceRequest) (*Advice, error)
}

// AdvisorService orchestrates the grace gate, the entitlement evaluator and
// the gated AI call.
type AdvisorService interface {
	CheckAccess(ctx context.Context, userID string, token string) (*AccessStatus, error)
	Ask(ctx context.Context, userID string, req AdviceRequest, token string) (*AdviceResponse, error)
	GetUsage(ctx context.Context, userID string, token string) (*UsageRecord, error)
}
