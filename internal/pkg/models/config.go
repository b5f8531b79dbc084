package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	API       APIConfig
	Routing   RoutingConfig
	Cache     CacheConfig
	Dashboard DashboardConfig
	Outreach  OutreachConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// Enabled reports whether a database host is configured
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL     string
	Subject string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address string
	Topic   string
	Channel string
}

// JWTConfig contains settings for reading operator bearer tokens
type JWTConfig struct {
	// Leeway tolerates clock skew when checking the exp claim
	Leeway time.Duration
}

// APIConfig points at the Urban Cabz REST API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RoutingConfig points at the geocoding and routing collaborators
type RoutingConfig struct {
	GeocodeURL string
	RouteURL   string
	UserAgent  string
	Timeout    time.Duration
}

// CacheConfig holds TTLs for the client-side caches
type CacheConfig struct {
	IdentityTTL time.Duration
	PricingTTL  time.Duration
	GeocodeTTL  time.Duration
	RouteTTL    time.Duration
}

// DashboardConfig controls the collection syncer
type DashboardConfig struct {
	ResyncInterval time.Duration
}

// OutreachConfig configures driver outreach and collections
type OutreachConfig struct {
	TelegramToken  string
	TelegramChatID int64
	UPIPayeeVPA    string
	UPIPayeeName   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
