package domain

import "time"

// Entitlement is the evaluator's verdict for a single gated request.
type Entitlement struct {
	Allowed        bool      `json:"allowed"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	EffectiveCount int       `json:"effective_count"`

	// ResetNeeded tells the caller to persist a fresh reset (count=0,
	// last_reset=now) alongside any increment. The evaluator never mutates
	// storage itself.
	ResetNeeded bool `json:"-"`
}

// NextReset returns the instant the counter rolls over given its last reset.
// Weekly plans reset after 7 calendar days, monthly plans on the same
// day-of-month one month later.
func NextReset(lastReset time.Time, period ResetPeriod) time.Time {
	if period == ResetMonthly {
		return lastReset.AddDate(0, 1, 0)
	}
	return lastReset.AddDate(0, 0, 7)
}

// EvaluateEntitlement decides whether one more gated action is allowed for the
// given plan tier and usage record at the given instant.
//
// The reset boundary is inclusive: evaluating exactly at the rollover instant
// observes a fresh counter. A user silent across several rollovers gets a
// single fresh reset, not accumulated credit. A nil usage record means the
// user has never consumed the feature and has the full quota.
func EvaluateEntitlement(tier PlanTier, usage *UsageRecord, now time.Time) Entitlement {
	if usage == nil {
		usage = &UsageRecord{Count: 0, LastReset: now}
	}

	nextReset := NextReset(usage.LastReset, tier.ResetPeriod)

	effectiveCount := usage.Count
	resetNeeded := false
	resetAt := nextReset
	if !now.Before(nextReset) {
		effectiveCount = 0
		resetNeeded = true
		resetAt = now
	}

	remaining := tier.QuotaLimit - effectiveCount
	if remaining < 0 {
		remaining = 0
	}

	return Entitlement{
		Allowed:        effectiveCount < tier.QuotaLimit,
		Remaining:      remaining,
		ResetAt:        resetAt,
		EffectiveCount: effectiveCount,
		ResetNeeded:    resetNeeded,
	}
}
