package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	MessageStream  MessageStreamConfig
	HttpClient     HttpClientConfig
	JWT            JWTConfig
	Booking        BookingConfig
	PaymentGateway PaymentGatewayConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	Username     string `envconfig:"DB_USERNAME" default:"postgres"`
	Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName       string `envconfig:"DB_NAME" default:"rental"`
	SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	Migrate      bool   `envconfig:"DB_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     string `envconfig:"RABBITMQ_PORT" default:"5672"`
	Username string `envconfig:"RABBITMQ_USERNAME" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Timeout   time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
	Type      string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Threshold int64         `envconfig:"HTTP_CLIENT_BREAKER_THRESHOLD" default:"5"`
	Rate      float64       `envconfig:"HTTP_CLIENT_BREAKER_RATE" default:"0.5"`
	MinSample int64         `envconfig:"HTTP_CLIENT_BREAKER_MIN_SAMPLE" default:"10"`
}

type JWTConfig struct {
	SecretKey string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	Issuer    string        `envconfig:"JWT_ISSUER" default:"rental-service"`
	Audience  string        `envconfig:"JWT_AUDIENCE" default:"rental-clients"`
	Expiry    time.Duration `envconfig:"JWT_EXPIRY" default:"60m"`
}

type BookingConfig struct {
	TaxRate    float64       `envconfig:"BOOKING_TAX_RATE" default:"0.12"`
	PendingTTL time.Duration `envconfig:"BOOKING_PENDING_TTL" default:"0"`
	LockExpiry time.Duration `envconfig:"BOOKING_LOCK_EXPIRY" default:"10s"`
}

type PaymentGatewayConfig struct {
	URL string `envconfig:"PAYMENT_GATEWAY_URL" default:""`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	if len(cfg.JWT.SecretKey) < 32 {
		log.Fatal("JWT_SECRET_KEY must be at least 32 characters")
	}

	return &cfg
}
