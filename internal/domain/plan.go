package domain

// ResetPeriod is the cadence at which a plan's usage counter returns to zero.
type ResetPeriod string

const (
	ResetWeekly  ResetPeriod = "week"
	ResetMonthly ResetPeriod = "month"
)

// Plan identifiers as stored in user subscriptions.
const (
	PlanBasic   = "basic"
	PlanPro     = "pro"
	PlanPremium = "premium"

	// PlanProfessional is a legacy identifier still present in old user rows.
	// It counts as AI-capable but has no quota row of its own.
	PlanProfessional = "professional"
)

// PlanTier describes the AI quota policy of a subscription plan.
type PlanTier struct {
	ID          string      `json:"id"`
	QuotaLimit  int         `json:"quota_limit"`
	ResetPeriod ResetPeriod `json:"reset_period"`
}

// Catalog maps plan identifiers to their quota policy. It is immutable after
// construction; the evaluator takes it by value lookup so tests can inject
// synthetic plans.
type Catalog map[string]PlanTier

// DefaultCatalog holds the production quota table.
var DefaultCatalog = Catalog{
	PlanBasic:   {ID: PlanBasic, QuotaLimit: 5, ResetPeriod: ResetWeekly},
	PlanPro:     {ID: PlanPro, QuotaLimit: 7, ResetPeriod: ResetWeekly},
	PlanPremium: {ID: PlanPremium, QuotaLimit: 50, ResetPeriod: ResetMonthly},
}

// Tier resolves a plan identifier to its quota policy. Unknown plans resolve
// to a zero quota so an unrecognized identifier denies instead of granting an
// unlimited allowance. Legacy "professional" rows hit this path too: they pass
// the capability gate but carry no quota row.
func (c Catalog) Tier(plan string) PlanTier {
	if tier, ok := c[plan]; ok {
		return tier
	}
	return PlanTier{ID: plan, QuotaLimit: 0, ResetPeriod: ResetWeekly}
}

// HasQuotaRow reports whether the plan has an explicit entry in the catalog.
func (c Catalog) HasQuotaRow(plan string) bool {
	_, ok := c[plan]
	return ok
}
