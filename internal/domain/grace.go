package domain

import "time"

// GracePeriodDays is the post-registration window during which AI advice is
// unreachable. The product pitches the advisor as having "learned the user's
// habits" first, so this is a UX rule checked before any quota logic.
const GracePeriodDays = 22

// AIEnabledForPlan returns whether the plan includes the AI advisor at all.
// Basic never gets AI regardless of tenure. The legacy "professional"
// identifier is treated as pro here.
func AIEnabledForPlan(plan string) bool {
	switch plan {
	case PlanPro, PlanPremium, PlanProfessional:
		return true
	default:
		return false
	}
}

// DaysSinceRegistration returns whole days elapsed since the account was
// created, never negative.
func DaysSinceRegistration(registeredAt, now time.Time) int {
	days := int(now.Sub(registeredAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsAIReachable decides whether AI features are reachable for the user at all,
// independent of quota. The plan capability check dominates: a basic user at
// any tenure stays blocked.
func IsAIReachable(plan string, registeredAt, now time.Time) bool {
	if !AIEnabledForPlan(plan) {
		return false
	}
	return DaysSinceRegistration(registeredAt, now) >= GracePeriodDays
}

// GraceDaysRemaining returns how many days are left until the grace period
// ends. Zero once the window has elapsed.
func GraceDaysRemaining(registeredAt, now time.Time) int {
	remaining := GracePeriodDays - DaysSinceRegistration(registeredAt, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
