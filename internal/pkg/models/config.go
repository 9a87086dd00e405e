package models

// Config holds all configuration for a service. It is loaded once at startup
// and shared read-only between components.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Services ServicesConfig
	Logger   LoggerConfig
}

// APIKeyConfig holds the shared keys for service-to-service calls on
// internal routes.
type APIKeyConfig struct {
	TransactionsService string
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string
	Enabled bool
}

// JWTConfig holds token signing configuration shared by the issuing service
// and every service that verifies tokens.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// ServicesConfig holds base URLs of the other services
type ServicesConfig struct {
	MarketplaceServiceURL string
	UsersServiceURL       string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level string
}
