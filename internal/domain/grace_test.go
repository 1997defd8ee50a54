package domain

import (
	"testing"
	"time"
)

func TestAIEnabledForPlan(t *testing.T) {
	tests := []struct {
		plan string
		want bool
	}{
		{PlanBasic, false},
		{PlanPro, true},
		{PlanPremium, true},
		{PlanProfessional, true},
		{"free", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AIEnabledForPlan(tt.plan); got != tt.want {
			t.Fatalf("AIEnabledForPlan(%q) = %v, want %v", tt.plan, got, tt.want)
		}
	}
}

func TestIsAIReachable_PlanGateDominatesTenure(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	registered := now.AddDate(0, 0, -1000)

	if IsAIReachable(PlanBasic, registered, now) {
		t.Fatalf("expected basic plan to stay blocked regardless of tenure")
	}
}

func TestIsAIReachable_GraceBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	registered := now.AddDate(0, 0, -21)
	if IsAIReachable(PlanPro, registered, now) {
		t.Fatalf("expected day 21 to be blocked")
	}
	if remaining := GraceDaysRemaining(registered, now); remaining != 1 {
		t.Fatalf("expected 1 day remaining at day 21, got %d", remaining)
	}

	registered = now.AddDate(0, 0, -22)
	if !IsAIReachable(PlanPro, registered, now) {
		t.Fatalf("expected day 22 to be reachable")
	}
	if remaining := GraceDaysRemaining(registered, now); remaining != 0 {
		t.Fatalf("expected 0 days remaining at day 22, got %d", remaining)
	}
}

func TestDaysSinceRegistration(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		registered time.Time
		want       int
	}{
		{"same instant", now, 0},
		{"registration in the future", now.Add(time.Hour), 0},
		{"partial day floors to zero", now.Add(-23 * time.Hour), 0},
		{"one full day", now.Add(-25 * time.Hour), 1},
		{"ten days", now.AddDate(0, 0, -10), 10},
	}

	for _, tt := range tests {
		if got := DaysSinceRegistration(tt.registered, now); got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestGraceDaysRemaining_NeverNegative(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	registered := now.AddDate(0, 0, -400)

	if remaining := GraceDaysRemaining(registered, now); remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", remaining)
	}
}
