package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrAccessDenied     = errors.New("access denied")
	ErrUsageUnavailable = errors.New("usage data unavailable")
	ErrProfileNotFound  = errors.New("profile not found")

	// ErrPlanUpgradeRequired denies AI access for plans without the feature
	// once the grace window no longer applies.
	ErrPlanUpgradeRequired = errors.New("Seu plano não inclui o consultor com IA. Faça upgrade para acessar.")
)

// GracePeriodError denies an AI request because the account is still inside
// the post-registration window. The message is user-facing and must name the
// window and the remaining day count, never quota wording.
type GracePeriodError struct {
	DaysRemaining int
}

func (e *GracePeriodError) Error() string {
	return fmt.Sprintf("A análise com IA é liberada 22 dias após o cadastro. Faltam %d dia(s).", e.DaysRemaining)
}

// QuotaExceededError denies an AI request because the plan's quota for the
// current period is exhausted.
type QuotaExceededError struct {
	ResetAt time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("Limite de perguntas atingido. Seu limite renova em %s.", e.ResetAt.Format("02/01/2006"))
}

// UpstreamError carries the AI provider's own failure message verbatim. The
// quota is never charged on this path.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
