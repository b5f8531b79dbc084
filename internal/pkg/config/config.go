package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/urbancabz/console/internal/pkg/models"
)

// InitConfig loads the .env file in local environments and resolves the configuration
// from the environment, with an optional YAML file layered underneath.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := newViper()
	if file := GetEnv("CONFIG_FILE", ""); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error reading config file", file, err)
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "urbancabz-console")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("server.allowed_origins", "http://localhost:3000")

	v.SetDefault("db.driver", "pgx")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 10)
	v.SetDefault("db.idle_conns", 2)

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nats.subject", "console.refresh")
	v.SetDefault("nsq.topic", "console.booking_actions")
	v.SetDefault("nsq.channel", "journal")

	v.SetDefault("jwt.leeway", "30s")

	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", "15s")

	v.SetDefault("routing.geocode_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("routing.route_url", "https://router.project-osrm.org")
	v.SetDefault("routing.user_agent", "urbancabz-console/1.0")
	v.SetDefault("routing.timeout", "10s")

	v.SetDefault("cache.identity_ttl", "60s")
	v.SetDefault("cache.pricing_ttl", "5m")
	v.SetDefault("cache.geocode_ttl", "24h")
	v.SetDefault("cache.route_ttl", "6h")

	v.SetDefault("dashboard.resync_interval", "10s")

	v.SetDefault("upi.payee_name", "Urban Cabz")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file_path", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	// Server config
	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")
	configs.Server.AllowedOrigins = splitList(v.GetString("server.allowed_origins"))

	// Database config
	configs.Database.Driver = v.GetString("db.driver")
	configs.Database.Host = v.GetString("db.host")
	configs.Database.Port = v.GetInt("db.port")
	configs.Database.Username = v.GetString("db.username")
	configs.Database.Password = v.GetString("db.password")
	configs.Database.Database = v.GetString("db.database")
	configs.Database.SSLMode = v.GetString("db.ssl_mode")
	configs.Database.MaxConns = v.GetInt("db.max_conns")
	configs.Database.IdleConns = v.GetInt("db.idle_conns")

	// Redis config
	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	// Messaging config
	configs.NATS.URL = v.GetString("nats.url")
	configs.NATS.Subject = v.GetString("nats.subject")
	configs.NSQ.Address = v.GetString("nsq.address")
	configs.NSQ.Topic = v.GetString("nsq.topic")
	configs.NSQ.Channel = v.GetString("nsq.channel")

	// JWT config
	configs.JWT.Leeway = v.GetDuration("jwt.leeway")

	// Upstream API and collaborators
	configs.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	configs.API.Timeout = v.GetDuration("api.timeout")
	configs.Routing.GeocodeURL = strings.TrimRight(v.GetString("routing.geocode_url"), "/")
	configs.Routing.RouteURL = strings.TrimRight(v.GetString("routing.route_url"), "/")
	configs.Routing.UserAgent = v.GetString("routing.user_agent")
	configs.Routing.Timeout = v.GetDuration("routing.timeout")

	// Caches
	configs.Cache.IdentityTTL = v.GetDuration("cache.identity_ttl")
	configs.Cache.PricingTTL = v.GetDuration("cache.pricing_ttl")
	configs.Cache.GeocodeTTL = v.GetDuration("cache.geocode_ttl")
	configs.Cache.RouteTTL = v.GetDuration("cache.route_ttl")

	// Dashboard
	configs.Dashboard.ResyncInterval = v.GetDuration("dashboard.resync_interval")

	// Outreach
	configs.Outreach.TelegramToken = v.GetString("telegram.bot_token")
	configs.Outreach.TelegramChatID = v.GetInt64("telegram.dispatch_chat_id")
	configs.Outreach.UPIPayeeVPA = v.GetString("upi.payee_vpa")
	configs.Outreach.UPIPayeeName = v.GetString("upi.payee_name")

	// Logger config
	configs.Logger.Level = v.GetString("log.level")
	configs.Logger.FilePath = v.GetString("log.file_path")

	return configs
}

// GetEnv returns the environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
