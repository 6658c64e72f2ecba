package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Firestore FirestoreConfig
	Sessions  SessionsConfig
	Auth      AuthConfig
	Mail      MailConfig
	Data      DataConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FirestoreConfig holds document-store configuration
type FirestoreConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// SessionsConfig holds session store configuration
type SessionsConfig struct {
	Type     string `mapstructure:"type"` // "memory" or "redis"
	RedisURL string `mapstructure:"redis_url"`
}

// AuthConfig holds session and password reset configuration
type AuthConfig struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	ResetTokenTTL time.Duration `mapstructure:"reset_token_ttl"`
	ResetBaseURL  string        `mapstructure:"reset_base_url"`
}

// MailConfig holds SMTP configuration. An empty host disables sending and
// logs mail instead.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// DataConfig holds paths to the data artifacts loaded at startup
type DataConfig struct {
	ExerciseCatalog string `mapstructure:"exercise_catalog"`
	ClusterModel    string `mapstructure:"cluster_model"`
	ClusterTable    string `mapstructure:"cluster_table"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	FileName   string `mapstructure:"file_name"`
	ToStdout   bool   `mapstructure:"to_stdout"`
	Level      string `mapstructure:"level"`
	FormatJSON bool   `mapstructure:"format_json"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fitgen/")

	// Environment variable settings. The key replacer maps nested keys to
	// their env form, e.g. firestore.project_id -> FITGEN_FIRESTORE_PROJECT_ID.
	v.SetEnvPrefix("FITGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Document store defaults. Empty defaults keep the env-only keys known
	// to viper so AutomaticEnv can fill them during Unmarshal.
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.credentials_file", "")

	// Session store defaults
	v.SetDefault("sessions.type", "memory")
	v.SetDefault("sessions.redis_url", "")

	// Auth defaults
	v.SetDefault("auth.session_ttl", "168h") // 7 days
	v.SetDefault("auth.reset_token_ttl", "1h")
	v.SetDefault("auth.reset_base_url", "http://localhost:3000")

	// Mail defaults
	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "no-reply@fitgen.local")

	// Data artifact defaults
	v.SetDefault("data.exercise_catalog", "data/megaGymDataset.csv")
	v.SetDefault("data.cluster_model", "data/model-data.json")
	v.SetDefault("data.cluster_table", "data/cluster_analysis.json")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Log defaults
	v.SetDefault("log.file_name", "")
	v.SetDefault("log.to_stdout", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format_json", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Firestore.ProjectID == "" {
		return fmt.Errorf("firestore project id is required (set FITGEN_FIRESTORE_PROJECT_ID)")
	}

	if config.Sessions.Type != "memory" && config.Sessions.Type != "redis" {
		return fmt.Errorf("sessions type must be 'memory' or 'redis', got: %s", config.Sessions.Type)
	}

	if config.Sessions.Type == "redis" && config.Sessions.RedisURL == "" {
		return fmt.Errorf("redis URL is required when sessions type is 'redis'")
	}

	if config.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth session TTL must be positive, got: %s", config.Auth.SessionTTL)
	}

	return nil
}
