package domain

// AuthService validates sessions and account standing.
type AuthService interface {
	ValidateToken(token string) (*SupabaseUser, error)
	IsAccountDisabled(userID string, token string) (bool, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetAllowedOrigins() []string
}
