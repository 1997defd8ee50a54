package config

import (
	"finance-ai-advisor/internal/domain"
	"finance-ai-advisor/internal/infra/supabase"
	"finance-ai-advisor/internal/repository"
	"finance-ai-advisor/internal/service"
	"finance-ai-advisor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    domain.SupabaseClient
	UsageRepository   domain.UsageRepository
	ProfileRepository domain.ProfileRepository
	AuthService       domain.AuthService

	// AdvisorService stays nil when Vertex AI credentials are not configured;
	// handlers answer 503 for advisor routes in that case.
	AdvisorService domain.AdvisorService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client
	supabaseClient := supabase.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		appLogger.Warn("Supabase client not initialized", "error", err)
	}

	// Initialize repositories
	usageRepo := repository.NewSupabaseUsageRepository(supabaseClient, appLogger)
	profileRepo := repository.NewSupabaseProfileRepository(supabaseClient, appLogger)

	// Initialize services
	authService := service.NewAuthService(supabaseClient, appLogger)

	var advisorService domain.AdvisorService
	if config.GetGCPProjectID() != "" {
		generator, err := service.NewVertexAdviceGenerator(appLogger, config.GetGCPProjectID(), config.GetGCPLocation())
		if err != nil {
			appLogger.Error("Failed to initialize advice generator", err)
		} else {
			advisorService = service.NewAdvisorService(profileRepo, usageRepo, generator, domain.DefaultCatalog, appLogger)
		}
	} else {
		appLogger.Warn("GCP_PROJECT_ID not set, advisor routes disabled")
	}

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		UsageRepository:   usageRepo,
		ProfileRepository: profileRepo,
		AuthService:       authService,
		AdvisorService:    advisorService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSupabaseClient returns the Supabase client instance
func (c *Container) GetSupabaseClient() domain.SupabaseClient {
	return c.SupabaseClient
}

// GetUsageRepository returns the usage repository instance
func (c *Container) GetUsageRepository() domain.UsageRepository {
	return c.UsageRepository
}

// GetProfileRepository returns the profile repository instance
func (c *Container) GetProfileRepository() domain.ProfileRepository {
	return c.ProfileRepository
}
