package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"finance-ai-advisor/internal/domain"
)

// ProfileHandler serves the authenticated user's profile and session checks.
type ProfileHandler struct {
	profileRepo domain.ProfileRepository
	logger      domain.Logger
}

func NewProfileHandler(profileRepo domain.ProfileRepository, logger domain.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

type profileResponse struct {
	User               *domain.SupabaseUser `json:"user"`
	Plan               string               `json:"plan"`
	RegisteredAt       time.Time            `json:"registered_at"`
	AIEnabled          bool                 `json:"ai_enabled"`
	GraceDaysRemaining int                  `json:"grace_days_remaining"`
}

// GetProfile returns the current user's profile plus plan and grace info.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.profileRepo.GetProfile(r.Context(), user.ID, token)
	if err != nil {
		h.logger.Error("Profile read failed", err, "user_id", user.ID)
		writeError(w, http.StatusNotFound, "Perfil não encontrado")
		return
	}

	now := time.Now()
	resp := profileResponse{
		User:               user,
		Plan:               profile.Plan,
		RegisteredAt:       profile.RegisteredAt,
		AIEnabled:          domain.AIEnabledForPlan(profile.Plan),
		GraceDaysRemaining: domain.GraceDaysRemaining(profile.RegisteredAt, now),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ValidateToken echoes the authenticated user so the frontend can confirm a
// session is still valid.
func (h *ProfileHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(user)
}
