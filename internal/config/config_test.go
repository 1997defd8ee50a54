package config

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("GCP_LOCATION", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "" {
		t.Fatalf("expected default supabase url empty, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "" {
		t.Fatalf("expected default supabase key empty, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetGCPLocation() != "us-central1" {
		t.Fatalf("expected default gcp location us-central1, got %s", cfg.GetGCPLocation())
	}
	if len(cfg.GetAllowedOrigins()) != 2 {
		t.Fatalf("expected 2 default origins, got %d", len(cfg.GetAllowedOrigins()))
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "test-key")
	t.Setenv("GCP_PROJECT_ID", "my-project")
	t.Setenv("GCP_LOCATION", "europe-west1")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("expected supabase key test-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetGCPProjectID() != "my-project" {
		t.Fatalf("expected gcp project my-project, got %s", cfg.GetGCPProjectID())
	}
	if cfg.GetGCPLocation() != "europe-west1" {
		t.Fatalf("expected gcp location europe-west1, got %s", cfg.GetGCPLocation())
	}

	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://app.example.com" || origins[1] != "https://staging.example.com" {
		t.Fatalf("unexpected origins: %v", origins)
	}
}

func TestNewConfig_PortFallback(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "7070")

	cfg := NewConfig()

	if cfg.GetServerPort() != "7070" {
		t.Fatalf("expected SERVER_PORT fallback 7070, got %s", cfg.GetServerPort())
	}
}
