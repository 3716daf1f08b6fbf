package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Mail      MailConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Tracing   TracingConfig
}

const (
	TracingNone   = "none"
	TracingStdout = "stdout"
)

// TracingConfig selects the span exporter behind the otelgin middleware.
type TracingConfig struct {
	Exporter    string
	SampleRatio float64
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	MaxRequestBytes int64
	MetricsEnabled  bool
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret            string
	ExpiryHours       int
	ResetExpiryMinute int
}

type MailConfig struct {
	APIKey    string
	APISecret string
	FromEmail string
	FromName  string
	BaseURL   string
}

type StorageConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
	MaxWidth      int
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("MAX_REQUEST_BYTES", 6<<20)
	v.SetDefault("METRICS_ENABLED", true)

	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "fruitarians")

	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("RESET_TOKEN_EXPIRY_MINUTES", 15)

	v.SetDefault("FROM_NAME", "Fruitarians")
	v.SetDefault("MAILJET_BASE_URL", "https://api.mailjet.com")

	v.SetDefault("S3_REGION", "ap-southeast-1")
	v.SetDefault("UPLOAD_MAX_WIDTH", 800)

	v.SetDefault("RATE_LIMIT_GENERAL_RPS", 10)
	v.SetDefault("RATE_LIMIT_GENERAL_BURST", 20)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
	v.SetDefault("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Accept,Authorization,X-Request-ID")
	v.SetDefault("CORS_EXPOSED_HEADERS", "X-Request-ID")
	v.SetDefault("CORS_MAX_AGE", 43200)

	v.SetDefault("TRACING_EXPORTER", TracingNone)
	v.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

// Load reads .env from the working directory when present and lets the
// environment override every key.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("ENVIRONMENT"),
			MaxRequestBytes: v.GetInt64("MAX_REQUEST_BYTES"),
			MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		JWT: JWTConfig{
			Secret:            v.GetString("JWT_SECRET"),
			ExpiryHours:       v.GetInt("JWT_EXPIRY_HOURS"),
			ResetExpiryMinute: v.GetInt("RESET_TOKEN_EXPIRY_MINUTES"),
		},
		Mail: MailConfig{
			APIKey:    v.GetString("MAILJET_API_KEY"),
			APISecret: v.GetString("MAILJET_API_SECRET"),
			FromEmail: v.GetString("FROM_EMAIL"),
			FromName:  v.GetString("FROM_NAME"),
			BaseURL:   v.GetString("MAILJET_BASE_URL"),
		},
		Storage: StorageConfig{
			Bucket:        v.GetString("S3_BUCKET"),
			Region:        v.GetString("S3_REGION"),
			Endpoint:      v.GetString("S3_ENDPOINT"),
			PublicBaseURL: v.GetString("S3_PUBLIC_BASE_URL"),
			MaxWidth:      v.GetInt("UPLOAD_MAX_WIDTH"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   v.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: v.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods:   splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders:   splitList(v.GetString("CORS_ALLOWED_HEADERS")),
			ExposedHeaders:   splitList(v.GetString("CORS_EXPOSED_HEADERS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           v.GetInt("CORS_MAX_AGE"),
		},
		Tracing: TracingConfig{
			Exporter:    strings.ToLower(v.GetString("TRACING_EXPORTER")),
			SampleRatio: v.GetFloat64("TRACING_SAMPLE_RATIO"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	switch c.Database.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("MONGO_URI and MONGO_DATABASE are required for the mongo driver")
		}
	case DriverPostgres:
		if c.Database.DBName == "" {
			return errors.New("DB_NAME is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Tracing.Exporter {
	case "", TracingNone, TracingStdout:
	default:
		return fmt.Errorf("unsupported TRACING_EXPORTER %q", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("TRACING_SAMPLE_RATIO must be between 0 and 1")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

func (c *JWTConfig) ResetTTL() time.Duration {
	return time.Duration(c.ResetExpiryMinute) * time.Minute
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
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
