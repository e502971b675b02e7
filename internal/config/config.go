package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Configはアプリ全体の設定
type Config struct {
	Port          string `koanf:"port" validate:"required,numeric"`           // サーバーポート（3000）
	Env           string `koanf:"go_env" validate:"oneof=development production test"` // development/production/test
	AllowedOrigin string `koanf:"fe_url" validate:"required"`                 // フロントURL（CORS）
	LogLevel      string `koanf:"log_level" validate:"oneof=trace debug info warn error"`

	DatabaseURL      string `koanf:"database_url"` // あれば最優先
	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     int    `koanf:"postgres_port"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresSSLMode  string `koanf:"postgres_sslmode"`

	DBMaxOpenConns    int           `koanf:"db_max_open_conns" validate:"min=1"`
	DBMaxIdleConns    int           `koanf:"db_max_idle_conns" validate:"min=0"`
	DBConnMaxLifetime time.Duration `koanf:"db_conn_max_lifetime"`

	JWTSecret string        `koanf:"jwt_secret" validate:"required"` // JWT署名シークレット
	JWTTTL    time.Duration `koanf:"jwt_ttl" validate:"gt=0"`

	RateLimitMax    int           `koanf:"rate_limit_max" validate:"min=1"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
}

func defaults() map[string]any {
	return map[string]any{
		"port":      "3000",
		"go_env":    EnvDevelopment,
		"fe_url":    "http://localhost:3000",
		"log_level": "info",

		"postgres_host":     "localhost",
		"postgres_port":     5432,
		"postgres_user":     "postgres",
		"postgres_password": "postgres",
		"postgres_db":       "app",
		"postgres_sslmode":  "disable",

		"db_max_open_conns":    25,
		"db_max_idle_conns":    5,
		"db_conn_max_lifetime": "30m",

		"jwt_secret": "dev_secret_change_me",
		"jwt_ttl":    "15m",

		"rate_limit_max":    100,
		"rate_limit_window": "15m",
	}
}

// Loadは .env → 既定値 → 環境変数 の順に読み込んで検証する
func Load() (Config, error) {
	// .envは無くてもよい
	_ = godotenv.Load()

	return load(env.Provider("", ".", strings.ToLower))
}

func load(envProvider koanf.Provider) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	//本番では開発用シークレットを許可しない
	if c.IsProduction() {
		if c.JWTSecret == "dev_secret_change_me" || len(c.JWTSecret) < 16 {
			return errors.New("JWT_SECRET must be set (>= 16 chars) in production")
		}
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// ":3000" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DATABASE_URLが無ければPOSTGRES_*から組み立てる
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:   "/" + c.PostgresDB,
	}
	q := u.Query()
	q.Set("sslmode", c.PostgresSSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
