package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/newsletter/internal/domain"
)

// EnvironmentVar selects the overlay file merged on top of config.yaml.
const EnvironmentVar = "APP_ENVIRONMENT"

// DefaultEnvironment is used when EnvironmentVar is not set.
const DefaultEnvironment = "local"

// Email transports.
const (
	TransportAPI  = "api"
	TransportSMTP = "smtp"
)

// Config holds the main configuration for the application.
type Config struct {
	Server      Server      `mapstructure:"server"`
	Database    Database    `mapstructure:"database"`
	EmailClient EmailClient `mapstructure:"email_client"`
	Startup     Startup     `mapstructure:"startup"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	Host     string `mapstructure:"host"`
	HTTPPort string `mapstructure:"http_port" validate:"required,numeric"` // HTTP port to listen on
}

// Database holds connection parameters for the subscriptions database.
type Database struct {
	Host       string `mapstructure:"host" validate:"required"`
	Port       string `mapstructure:"port" validate:"required,numeric"`
	User       string `mapstructure:"user" validate:"required"`
	Pass       string `mapstructure:"pass"`
	Name       string `mapstructure:"name" validate:"required"`
	RequireSSL bool   `mapstructure:"require_ssl"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// EmailClient holds the settings of the outbound email transport.
type EmailClient struct {
	Transport           string `mapstructure:"transport" validate:"oneof=api smtp"`
	BaseURL             string `mapstructure:"base_url" validate:"required_if=Transport api"`
	SenderEmail         string `mapstructure:"sender_email" validate:"required,email"`
	APIKey              string `mapstructure:"api_key"`
	TimeoutMilliseconds int    `mapstructure:"timeout_milliseconds" validate:"gt=0"`

	SMTPHost string `mapstructure:"smtp_host" validate:"required_if=Transport smtp"`
	SMTPPort int    `mapstructure:"smtp_port" validate:"required_if=Transport smtp"`
	SMTPUser string `mapstructure:"smtp_user"`
	SMTPPass string `mapstructure:"smtp_pass"`
}

// Startup holds settings used only while the process boots.
type Startup struct {
	Retry retry.Strategy `mapstructure:"retry"` // policy for the initial database ping
}

// Addr returns the address the HTTP server listens on.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.HTTPPort)
}

// DSN returns the PostgreSQL DSN string for connecting to the database.
func (d Database) DSN() string {
	sslMode := "disable"
	if d.RequireSSL {
		sslMode = "require"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name, sslMode,
	)
}

// Timeout returns the per-request timeout of the email transport.
func (e EmailClient) Timeout() time.Duration {
	return time.Duration(e.TimeoutMilliseconds) * time.Millisecond
}

// Sender parses the configured sender address.
func (e EmailClient) Sender() (domain.SubscriberEmail, error) {
	return domain.ParseSubscriberEmail(e.SenderEmail)
}

// envBindings maps config keys to the short environment variable names
// used by docker-compose and deployment manifests.
var envBindings = map[string]string{
	"database.host": "DB_HOST",
	"database.port": "DB_PORT",
	"database.user": "DB_USER",
	"database.pass": "DB_PASSWORD",
	"database.name": "DB_NAME",

	"email_client.api_key":   "EMAIL_API_KEY",
	"email_client.smtp_user": "SMTP_USER",
	"email_client.smtp_pass": "SMTP_PASS",
}

// bindEnv binds critical environment variables to viper keys. Every key can
// also be overridden as APP_<SECTION>__<KEY>, e.g. APP_DATABASE__HOST.
func bindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "__")), env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	return nil
}

// Load reads config.yaml from dir, merges the overlay for the current
// environment and applies environment overrides. A .env file in the working
// directory, if any, is loaded first.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	env := os.Getenv(EnvironmentVar)
	if env == "" {
		env = DefaultEnvironment
	}

	overlay := filepath.Join(dir, strings.ToLower(env)+".yaml")
	if _, err := os.Stat(overlay); err == nil {
		v.SetConfigFile(overlay)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merge %s config: %w", env, err)
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Must loads and validates the configuration from dir.
//
// It panics if configuration cannot be read, unmarshalled or validated.
func Must(dir string) *Config {
	cfg, err := Load(dir)
	if err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to load config")
	}

	return cfg
}
