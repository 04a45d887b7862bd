package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	RequireAuth       bool   `mapstructure:"REQUIRE_AUTH"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Draft persistence: "redis", "mongo" or "memory".
	DraftStore         string        `mapstructure:"DRAFT_STORE"`
	DraftTTL           time.Duration `mapstructure:"DRAFT_TTL"`
	DraftEncryptionKey string        `mapstructure:"DRAFT_ENCRYPTION_KEY"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`

	// Mongo configuration.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// External booking API. Empty URL means bookings ids are issued locally.
	BookingAPIURL     string        `mapstructure:"BOOKING_API_URL"`
	BookingAPITimeout time.Duration `mapstructure:"BOOKING_API_TIMEOUT"`

	// Google Maps API Key.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	Currency string `mapstructure:"CURRENCY"`
}

var AppConfig Config

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("REQUIRE_AUTH", false)
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DRAFT_STORE", "redis")
	v.SetDefault("DRAFT_TTL", "24h")
	v.SetDefault("DRAFT_ENCRYPTION_KEY", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DRAFT_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "madeasy")
	v.SetDefault("BOOKING_API_URL", "")
	v.SetDefault("BOOKING_API_TIMEOUT", "15s")
	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("CURRENCY", "KES")
}

// Load reads configuration from defaults, an optional config.yaml and the environment.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
