package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName      string `env:"JOBBOARD_APP_NAME" envDefault:"jobboard"`
	AppEnv       string `env:"JOBBOARD_APP_ENV" envDefault:"local"`
	HTTPHost     string `env:"JOBBOARD_HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort     string `env:"JOBBOARD_HTTP_PORT" envDefault:"3005"`
	HTTPBasePath string `env:"JOBBOARD_HTTP_BASE_PATH" envDefault:"/api/v1"`

	DBHost     string `env:"JOBBOARD_DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"JOBBOARD_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"JOBBOARD_DB_USER" envDefault:"app"`
	DBPassword string `env:"JOBBOARD_DB_PASSWORD" envDefault:"app_password"`
	DBName     string `env:"JOBBOARD_DB_NAME" envDefault:"jobboard"`
	DBSSLMode  string `env:"JOBBOARD_DB_SSLMODE" envDefault:"disable"`

	JWTSecret     string        `env:"JOBBOARD_JWT_SECRET"`
	JWTPrivateKey string        `env:"JOBBOARD_JWT_PRIVATE_KEY"`
	JWTPublicKey  string        `env:"JOBBOARD_JWT_PUBLIC_KEY"`
	JWTAudience   string        `env:"JOBBOARD_JWT_AUDIENCE" envDefault:"frontend"`
	JWTIssuer     string        `env:"JOBBOARD_JWT_ISSUER" envDefault:"jobboard"`
	AccessTTL     time.Duration `env:"JOBBOARD_JWT_ACCESS_TTL" envDefault:"1h"`
	// Tokens minted after a federated login may outlive password-login tokens.
	OAuthAccessTTL time.Duration `env:"JOBBOARD_JWT_OAUTH_ACCESS_TTL" envDefault:"12h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL" envDefault:"http://localhost:3005/api/v1/auth/oauth/google/callback"`

	EmailHost   string `env:"EMAIL_HOST" envDefault:"smtp.example.com"`
	EmailPort   int    `env:"EMAIL_PORT" envDefault:"587"`
	EmailUser   string `env:"EMAIL_USER"`
	EmailPass   string `env:"EMAIL_PASS"`
	SystemEmail string `env:"SYSTEM_EMAIL"`

	RedisAddr       string        `env:"JOBBOARD_REDIS_ADDR"`
	RedisPassword   string        `env:"JOBBOARD_REDIS_PASSWORD"`
	LoginRateLimit  int           `env:"JOBBOARD_LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindow time.Duration `env:"JOBBOARD_LOGIN_RATE_WINDOW" envDefault:"1m"`

	NATSURL                  string `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSVerifySubject        string `env:"NATS_SUBJECT_VERIFY_JWT" envDefault:"auth.verifyJWT"`
	NATSStatusChangedSubject string `env:"NATS_SUBJECT_APPLICATION_STATUS" envDefault:"application.status-changed"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
