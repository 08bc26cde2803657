package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultRelayEndpoint is the placeholder endpoint used when none is configured
const DefaultRelayEndpoint = "https://formspree.io/f/demo"

// Config holds all application configuration values
type Config struct {
	RelayEndpoint  string
	RelayTimeout   time.Duration
	Port           string
	SessionTTL     time.Duration
	MaxSessions    int
	AllowedOrigins []string
	GinMode        string
	LogLevel       string
	ContactEmail   string
}

// LoadEnvFile loads .env into the process environment when present.
// A missing file is not an error.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading env file: %w", err)
	}
	return nil
}

// SetDefaults registers defaults for every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("formspree_endpoint", DefaultRelayEndpoint)
	v.SetDefault("relay_timeout", 15*time.Second)
	v.SetDefault("port", "8080")
	v.SetDefault("session_ttl", 30*time.Minute)
	v.SetDefault("max_sessions", 10000)
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("contact_email", "")
}

// New returns a viper instance bound to the environment with defaults applied
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	return v
}

// LoadConfig reads configuration from v
func LoadConfig(v *viper.Viper) *Config {
	endpoint := strings.TrimSpace(v.GetString("formspree_endpoint"))
	if endpoint == "" {
		endpoint = DefaultRelayEndpoint
	}

	timeout := v.GetDuration("relay_timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	ttl := v.GetDuration("session_ttl")
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	maxSessions := v.GetInt("max_sessions")
	if maxSessions <= 0 {
		maxSessions = 10000
	}

	port := strings.TrimSpace(v.GetString("port"))
	if port == "" {
		port = "8080"
	}

	return &Config{
		RelayEndpoint:  endpoint,
		RelayTimeout:   timeout,
		Port:           port,
		SessionTTL:     ttl,
		MaxSessions:    maxSessions,
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
		GinMode:        v.GetString("gin_mode"),
		LogLevel:       v.GetString("log_level"),
		ContactEmail:   v.GetString("contact_email"),
	}
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
