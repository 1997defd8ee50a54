package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"finance-ai-advisor/internal/domain"
	apperrors "finance-ai-advisor/pkg/errors"
)

const maxPromptLen = 2000

type AdvisorHandler struct {
	advisorService domain.AdvisorService
	logger         domain.Logger
}

func NewAdvisorHandler(advisorService domain.AdvisorService, logger domain.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		logger:         logger,
	}
}

// Ask handles one gated advisor question.
func (h *AdvisorHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h.advisorService == nil {
		writeError(w, http.StatusServiceUnavailable, "Advisor service not configured (missing GCP_PROJECT_ID or credentials)")
		return
	}

	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	var req domain.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt cannot be empty")
		return
	}
	if len(req.Prompt) > maxPromptLen {
		writeError(w, http.StatusBadRequest, "prompt too long")
		return
	}

	resp, err := h.advisorService.Ask(r.Context(), user.ID, req, token)
	if err != nil {
		h.writeAdvisorError(w, err, user.ID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// GetAccess returns the combined grace and quota status for UI gating.
func (h *AdvisorHandler) GetAccess(w http.ResponseWriter, r *http.Request) {
	if h.advisorService == nil {
		writeError(w, http.StatusServiceUnavailable, "Advisor service not configured (missing GCP_PROJECT_ID or credentials)")
		return
	}

	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	status, err := h.advisorService.CheckAccess(r.Context(), user.ID, token)
	if err != nil {
		h.writeAdvisorError(w, err, user.ID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

// GetUsage returns the user's current usage row.
func (h *AdvisorHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	if h.advisorService == nil {
		writeError(w, http.StatusServiceUnavailable, "Advisor service not configured (missing GCP_PROJECT_ID or credentials)")
		return
	}

	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	usage, err := h.advisorService.GetUsage(r.Context(), user.ID, token)
	if err != nil {
		h.writeAdvisorError(w, err, user.ID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(usage)
}

// writeAdvisorError maps gate decisions to HTTP statuses. The user-facing
// message is the error's own text: grace denials carry the day count, quota
// denials the quota wording, upstream failures the provider message verbatim.
func (h *AdvisorHandler) writeAdvisorError(w http.ResponseWriter, err error, userID string) {
	var graceErr *domain.GracePeriodError
	var quotaErr *domain.QuotaExceededError
	var upErr *domain.UpstreamError

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &graceErr):
		appErr = apperrors.NewGracePeriodError(graceErr.Error())
	case errors.Is(err, domain.ErrPlanUpgradeRequired):
		appErr = apperrors.NewGracePeriodError(domain.ErrPlanUpgradeRequired.Error())
	case errors.As(err, &quotaErr):
		appErr = apperrors.NewQuotaExceededError(quotaErr.Error())
	case errors.As(err, &upErr):
		appErr = apperrors.NewUpstreamError(upErr.Error(), err)
	case errors.Is(err, domain.ErrUsageUnavailable):
		appErr = apperrors.NewNetworkError("Não foi possível verificar seu limite de uso. Tente novamente.", err)
	case errors.Is(err, domain.ErrProfileNotFound):
		appErr = apperrors.NewNotFoundError("Perfil não encontrado")
	default:
		h.logger.Error("Advisor request failed", err, "user_id", userID)
		appErr = apperrors.NewInternalError("Falha ao processar a solicitação", err)
	}

	writeError(w, appErr.StatusCode, appErr.Message)
}
