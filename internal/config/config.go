package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment   DeploymentConfig   `validate:"required"`
	Server       ServerConfig       `validate:"required"`
	Logging      LoggingConfig      `validate:"required"`
	Postgres     PostgresConfig     `validate:"required"`
	Auth         AuthConfig         `validate:"required"`
	Storage      StorageConfig      `mapstructure:"storage"`
	WhatsApp     WhatsAppConfig     `mapstructure:"whatsapp"`
	Notification NotificationConfig `mapstructure:"notification"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	Provider types.AuthProvider `validate:"required"`
	Secret   string             `validate:"required"`
	APIKey   APIKeyConfig       `mapstructure:"api_key"`
	Supabase SupabaseConfig     `mapstructure:"supabase"`
}

type APIKeyConfig struct {
	Header string `mapstructure:"header"`
	Keys   map[string]APIKeyDetails
}

type APIKeyDetails struct {
	UserID string `mapstructure:"user_id"`
	Name   string
}

type SupabaseConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
}

type StorageConfig struct {
	Enabled       bool
	Region        string
	Bucket        string
	KeyPrefix     string `mapstructure:"key_prefix"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// WhatsAppConfig configures the outbound messaging gateway. Missing or
// placeholder credentials degrade delivery to a logged no-op instead of
// erroring, so local and CI runs never need a live gateway.
type WhatsAppConfig struct {
	GatewayURL string `mapstructure:"gateway_url"`
	Session    string
	APIKey     string `mapstructure:"api_key"`
}

// Configured reports whether real gateway credentials are present.
func (c WhatsAppConfig) Configured() bool {
	if c.GatewayURL == "" || c.APIKey == "" {
		return false
	}
	if strings.HasPrefix(c.APIKey, "your-") || strings.HasPrefix(c.APIKey, "changeme") {
		return false
	}
	return true
}

// NotificationConfig configures the in-process message bus that carries
// service-request events to the notification handler.
type NotificationConfig struct {
	Topic      string           `mapstructure:"topic"`
	PubSub     types.PubSubType `mapstructure:"pubsub"`
	MaxRetries int              `mapstructure:"max_retries"`
}

func NewConfig() (*Configuration, error) {
	// Local development reads overrides from a .env file when present.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/tempursarihub")

	v.SetEnvPrefix("TEMPURSARIHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("auth.provider", string(types.AuthProviderSupabase))
	v.SetDefault("auth.api_key.header", "x-api-key")
	v.SetDefault("notification.topic", "service_requests")
	v.SetDefault("notification.pubsub", string(types.MemoryPubSub))
	v.SetDefault("notification.max_retries", 3)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Auth: AuthConfig{
			Provider: types.AuthProviderLocal,
			Secret:   "test-secret",
		},
		Notification: NotificationConfig{
			Topic:      "service_requests",
			PubSub:     types.MemoryPubSub,
			MaxRetries: 3,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}

// GetMigrationDSN returns the URL form of the DSN that golang-migrate
// expects.
func (c PostgresConfig) GetMigrationDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}
