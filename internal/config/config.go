package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Escalation EscalationConfig `yaml:"escalation"`
	Notify     NotifyConfig     `yaml:"notify"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT settings for identifying API callers.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"carewatch"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// EscalationConfig holds severity policy and lifecycle tuning.
// Fall-detection thresholds are policy constants exposed as configuration
// so they can be tuned without touching dispatch logic.
type EscalationConfig struct {
	// FallCriticalThreshold: confidence at or above this is CRITICAL.
	FallCriticalThreshold float64 `yaml:"fall_critical_threshold" env:"ESC_FALL_CRITICAL_THRESHOLD" env-default:"90"`
	// FallMediumThreshold: confidence at or above this (but below critical) is MEDIUM.
	FallMediumThreshold float64 `yaml:"fall_medium_threshold" env:"ESC_FALL_MEDIUM_THRESHOLD" env-default:"50"`
	// StaleActiveAge is how old an ACTIVE emergency must be before the
	// sweeper command reports it as stale.
	StaleActiveAge time.Duration `yaml:"stale_active_age" env:"ESC_STALE_ACTIVE_AGE" env-default:"30m"`
	// HistoryMaxLimit caps page sizes on the history endpoint.
	HistoryMaxLimit int `yaml:"history_max_limit" env:"ESC_HISTORY_MAX_LIMIT" env-default:"200"`
}

// NotifyConfig holds delivery provider settings for the fan-out channels.
type NotifyConfig struct {
	// DispatchTimeout bounds every single provider call; a hung provider
	// becomes a TIMEOUT outcome instead of stalling the fan-out.
	DispatchTimeout time.Duration `yaml:"dispatch_timeout" env:"NOTIFY_DISPATCH_TIMEOUT" env-default:"5s"`

	Push  PushConfig  `yaml:"push"`
	SMS   SMSConfig   `yaml:"sms"`
	Email EmailConfig `yaml:"email"`
}

// PushConfig holds push service settings.
type PushConfig struct {
	BaseURL string `yaml:"base_url" env:"NOTIFY_PUSH_BASE_URL" env-default:"https://push.carewatch.dev/v1"`
	APIKey  string `yaml:"api_key"  env:"NOTIFY_PUSH_API_KEY"`
}

// SMSConfig holds SMS gateway settings.
type SMSConfig struct {
	BaseURL   string `yaml:"base_url"   env:"NOTIFY_SMS_BASE_URL" env-default:"https://sms.carewatch.dev/v1"`
	AccountID string `yaml:"account_id" env:"NOTIFY_SMS_ACCOUNT_ID"`
	AuthToken string `yaml:"auth_token" env:"NOTIFY_SMS_AUTH_TOKEN"`
	From      string `yaml:"from"       env:"NOTIFY_SMS_FROM"`
}

// EmailConfig holds email transport settings.
type EmailConfig struct {
	BaseURL string `yaml:"base_url" env:"NOTIFY_EMAIL_BASE_URL" env-default:"https://mail.carewatch.dev/v1"`
	APIKey  string `yaml:"api_key"  env:"NOTIFY_EMAIL_API_KEY"`
	From    string `yaml:"from"     env:"NOTIFY_EMAIL_FROM" env-default:"alerts@carewatch.dev"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
