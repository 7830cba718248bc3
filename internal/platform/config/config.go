package config

import (
	"net"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys, shared by environment variables and CLI flags.
const (
	KeyHost               = "HOST"
	KeyPort               = "PORT"
	KeyDebug              = "DEBUG"
	KeyIsProduction       = "IS_PRODUCTION"
	KeyCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Config holds application configuration.
type Config struct {
	Host               string
	Port               string
	Debug              bool
	IsProduction       bool
	CORSAllowedOrigins []string
}

// Address returns the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values bound to viper beforehand (e.g. CLI flags) take precedence.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, "8080")
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyIsProduction, false)
	viper.SetDefault(KeyCORSAllowedOrigins, "*")

	viper.AutomaticEnv()

	// Empty environment variables count as unset, so HOST= falls back to the default.
	cfg := &Config{}
	cfg.Host = viper.GetString(KeyHost)
	cfg.Port = viper.GetString(KeyPort)
	cfg.Debug = viper.GetBool(KeyDebug)
	cfg.IsProduction = viper.GetBool(KeyIsProduction)
	cfg.CORSAllowedOrigins = splitList(viper.GetString(KeyCORSAllowedOrigins))

	return cfg, nil
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
