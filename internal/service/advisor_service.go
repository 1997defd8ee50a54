package service

import (
	"context"
	"fmt"
	"time"

	"finance-ai-advisor/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Remaining-quota warnings start at this threshold (inclusive).
const lowQuotaWarningAt = 3

// AdvisorService orchestrates the gated AI flow: grace gate, entitlement
// evaluation, the Gemini call, and the atomic usage commit.
type AdvisorService struct {
	profileRepo domain.ProfileRepository
	usageRepo   domain.UsageRepository
	generator   domain.AdviceGenerator
	catalog     domain.Catalog
	logger      domain.Logger

	// now is swapped in tests to pin reset boundaries.
	now func() time.Time
}

func NewAdvisorService(
	profileRepo domain.ProfileRepository,
	usageRepo domain.UsageRepository,
	generator domain.AdviceGenerator,
	catalog domain.Catalog,
	logger domain.Logger,
) *AdvisorService {
	return &AdvisorService{
		profileRepo: profileRepo,
		usageRepo:   usageRepo,
		generator:   generator,
		catalog:     catalog,
		logger:      logger,
		now:         time.Now,
	}
}

// gate runs the grace-period checks for a profile. The tenure check comes
// first so a user inside the window always sees the day count, never quota or
// upgrade wording, whatever their plan.
func (s *AdvisorService) gate(profile *domain.UserProfile, now time.Time) error {
	days := domain.DaysSinceRegistration(profile.RegisteredAt, now)
	if days < domain.GracePeriodDays {
		return &domain.GracePeriodError{DaysRemaining: domain.GraceDaysRemaining(profile.RegisteredAt, now)}
	}
	if !domain.AIEnabledForPlan(profile.Plan) {
		return domain.ErrPlanUpgradeRequired
	}
	return nil
}

func (s *AdvisorService) tierFor(plan string) domain.PlanTier {
	if domain.AIEnabledForPlan(plan) && !s.catalog.HasQuotaRow(plan) {
		// Legacy "professional" rows land here: AI-capable but quota-locked
		// to zero. Kept as-is until billing decides what they map to.
		s.logger.Warn("Plan has AI access but no quota row", "plan", plan)
	}
	return s.catalog.Tier(plan)
}

// Ask runs one gated question. Quota is charged only after the provider call
// succeeds, through a single atomic increment; the remaining figure in the
// response is projected from the committed row, never recomputed locally.
func (s *AdvisorService) Ask(ctx context.Context, userID string, req domain.AdviceRequest, token string) (*domain.AdviceResponse, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := s.now()
	if err := s.gate(profile, now); err != nil {
		// Usage is deliberately not read on this path.
		return nil, err
	}

	usage, err := s.usageRepo.GetUsage(ctx, userID, token)
	if err != nil {
		// A failed read is not "no record yet": deny instead of handing out
		// a fresh quota during a storage outage.
		s.logger.Error("Usage read failed", err, "user_id", userID)
		return nil, domain.ErrUsageUnavailable
	}

	tier := s.tierFor(profile.Plan)
	ent := domain.EvaluateEntitlement(tier, usage, now)
	if !ent.Allowed {
		return nil, &domain.QuotaExceededError{ResetAt: ent.ResetAt}
	}

	advice, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.logger.Error("Advice generation failed", err, "user_id", userID)
		return nil, err
	}

	committed, err := s.usageRepo.CommitUsage(ctx, userID, profile.Plan, ent.ResetNeeded, now, token)
	if err != nil {
		s.logger.Error("Usage commit failed", err, "user_id", userID)
		return nil, domain.ErrUsageUnavailable
	}

	remaining := tier.QuotaLimit - committed.Count
	if remaining < 0 {
		remaining = 0
	}

	resp := &domain.AdviceResponse{
		Answer:    advice.Answer,
		Remaining: remaining,
		ResetAt:   domain.NextReset(committed.LastReset, tier.ResetPeriod),
	}
	if remaining > 0 && remaining <= lowQuotaWarningAt {
		resp.Warning = fmt.Sprintf("Você tem %d pergunta(s) restante(s) neste período.", remaining)
	}

	s.logger.Info("Advice generated", "user_id", userID, "plan", profile.Plan, "count", committed.Count, "remaining", remaining, "tokens", advice.TokenCount)
	return resp, nil
}

// CheckAccess returns the combined grace and quota status for UI gating. It
// performs no mutation, so profile and usage load concurrently; a
// grace-blocked result still reports only grace fields.
func (s *AdvisorService) CheckAccess(ctx context.Context, userID string, token string) (*domain.AccessStatus, error) {
	var (
		profile *domain.UserProfile
		usage   *domain.UsageRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profileRepo.GetProfile(gctx, userID, token)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		u, err := s.usageRepo.GetUsage(gctx, userID, token)
		if err != nil {
			return domain.ErrUsageUnavailable
		}
		usage = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	status := &domain.AccessStatus{
		Plan:      profile.Plan,
		AIEnabled: domain.AIEnabledForPlan(profile.Plan),
	}

	days := domain.DaysSinceRegistration(profile.RegisteredAt, now)
	if days < domain.GracePeriodDays {
		status.GraceActive = true
		status.GraceDaysRemaining = domain.GraceDaysRemaining(profile.RegisteredAt, now)
		return status, nil
	}
	if !status.AIEnabled {
		return status, nil
	}

	ent := domain.EvaluateEntitlement(s.tierFor(profile.Plan), usage, now)
	status.Allowed = ent.Allowed
	status.Remaining = ent.Remaining
	status.ResetAt = ent.ResetAt
	return status, nil
}

// GetUsage returns the user's current usage row, synthesizing a zeroed record
// for users who never asked anything.
func (s *AdvisorService) GetUsage(ctx context.Context, userID string, token string) (*domain.UsageRecord, error) {
	usage, err := s.usageRepo.GetUsage(ctx, userID, token)
	if err != nil {
		return nil, domain.ErrUsageUnavailable
	}
	if usage == nil {
		return &domain.UsageRecord{UserID: userID, Count: 0, LastReset: s.now()}, nil
	}
	return usage, nil
}
