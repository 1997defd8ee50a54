package domain

import (
	"testing"
	"time"
)

func TestEvaluateEntitlement_QuotaCeiling(t *testing.T) {
	tier := DefaultCatalog.Tier(PlanBasic)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lastReset := now.Add(-24 * time.Hour)

	for count := 0; count < tier.QuotaLimit; count++ {
		usage := &UsageRecord{UserID: "user-1", Count: count, LastReset: lastReset}
		result := EvaluateEntitlement(tier, usage, now)
		if !result.Allowed {
			t.Fatalf("expected count %d of %d to be allowed", count, tier.QuotaLimit)
		}
	}

	usage := &UsageRecord{UserID: "user-1", Count: tier.QuotaLimit, LastReset: lastReset}
	result := EvaluateEntitlement(tier, usage, now)
	if result.Allowed {
		t.Fatalf("expected count %d to be denied", tier.QuotaLimit)
	}
	if result.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", result.Remaining)
	}
}

func TestEvaluateEntitlement_RemainingForAllCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lastReset := now.Add(-24 * time.Hour)

	for _, plan := range []string{PlanBasic, PlanPro, PlanPremium} {
		tier := DefaultCatalog.Tier(plan)
		for count := 0; count <= tier.QuotaLimit*2; count++ {
			usage := &UsageRecord{Count: count, LastReset: lastReset}
			result := EvaluateEntitlement(tier, usage, now)

			want := tier.QuotaLimit - count
			if want < 0 {
				want = 0
			}
			if result.Remaining != want {
				t.Fatalf("plan %s count %d: expected remaining %d, got %d", plan, count, want, result.Remaining)
			}
		}
	}
}

func TestEvaluateEntitlement_WeeklyResetBoundary(t *testing.T) {
	tier := DefaultCatalog.Tier(PlanBasic)
	lastReset := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	usage := &UsageRecord{Count: 5, LastReset: lastReset}

	// One second before the boundary the counter still stands.
	before := lastReset.AddDate(0, 0, 7).Add(-time.Second)
	result := EvaluateEntitlement(tier, usage, before)
	if result.ResetNeeded {
		t.Fatalf("expected no reset one second before the boundary")
	}
	if result.Allowed {
		t.Fatalf("expected exhausted quota to deny before the boundary")
	}
	if !result.ResetAt.Equal(lastReset.AddDate(0, 0, 7)) {
		t.Fatalf("expected reset_at at next boundary, got %v", result.ResetAt)
	}

	// Exactly at the boundary the reset is inclusive.
	at := lastReset.AddDate(0, 0, 7)
	result = EvaluateEntitlement(tier, usage, at)
	if !result.ResetNeeded {
		t.Fatalf("expected reset exactly at the boundary")
	}
	if result.EffectiveCount != 0 {
		t.Fatalf("expected effective count 0 after reset, got %d", result.EffectiveCount)
	}
	if !result.Allowed {
		t.Fatalf("expected a fresh period to allow the request")
	}
	if !result.ResetAt.Equal(at) {
		t.Fatalf("expected reset_at to be now after a reset, got %v", result.ResetAt)
	}
}

func TestEvaluateEntitlement_MonthlyReset(t *testing.T) {
	tier := DefaultCatalog.Tier(PlanPremium)
	lastReset := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	usage := &UsageRecord{Count: 50, LastReset: lastReset}

	result := EvaluateEntitlement(tier, usage, time.Date(2026, 2, 14, 23, 59, 59, 0, time.UTC))
	if result.ResetNeeded {
		t.Fatalf("expected no reset before the same day-of-month next month")
	}

	result = EvaluateEntitlement(tier, usage, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
	if !result.ResetNeeded {
		t.Fatalf("expected reset on the same day-of-month next month")
	}
	if result.Remaining != 50 {
		t.Fatalf("expected full quota after monthly reset, got %d", result.Remaining)
	}
}

func TestEvaluateEntitlement_NoRetroactiveAccumulation(t *testing.T) {
	tier := DefaultCatalog.Tier(PlanBasic)
	lastReset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	usage := &UsageRecord{Count: tier.QuotaLimit, LastReset: lastReset}

	// Four skipped weekly periods later: a single fresh reset, not 4x credit.
	now := lastReset.AddDate(0, 0, 30)
	result := EvaluateEntitlement(tier, usage, now)
	if !result.ResetNeeded {
		t.Fatalf("expected reset after skipped periods")
	}
	if result.EffectiveCount != 0 {
		t.Fatalf("expected effective count 0, got %d", result.EffectiveCount)
	}
	if !result.Allowed {
		t.Fatalf("expected request to be allowed after silence")
	}
	if result.Remaining != tier.QuotaLimit {
		t.Fatalf("expected remaining %d, got %d", tier.QuotaLimit, result.Remaining)
	}
}

func TestEvaluateEntitlement_AbsentRecord(t *testing.T) {
	tier := DefaultCatalog.Tier(PlanPremium)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	result := EvaluateEntitlement(tier, nil, now)
	if !result.Allowed {
		t.Fatalf("expected brand-new user to be allowed")
	}
	if result.Remaining != 50 {
		t.Fatalf("expected remaining 50, got %d", result.Remaining)
	}
	if result.EffectiveCount != 0 {
		t.Fatalf("expected effective count 0, got %d", result.EffectiveCount)
	}
}

func TestEvaluateEntitlement_UnknownPlanDenies(t *testing.T) {
	tier := DefaultCatalog.Tier("professional")
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	result := EvaluateEntitlement(tier, nil, now)
	if result.Allowed {
		t.Fatalf("expected plan without quota row to deny")
	}
	if result.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", result.Remaining)
	}
}

func TestEvaluateEntitlement_SyntheticCatalog(t *testing.T) {
	catalog := Catalog{
		"trial": {ID: "trial", QuotaLimit: 2, ResetPeriod: ResetWeekly},
	}
	tier := catalog.Tier("trial")
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	usage := &UsageRecord{Count: 1, LastReset: now.Add(-time.Hour)}

	result := EvaluateEntitlement(tier, usage, now)
	if !result.Allowed || result.Remaining != 1 {
		t.Fatalf("expected allowed with remaining 1, got allowed=%v remaining=%d", result.Allowed, result.Remaining)
	}
}
