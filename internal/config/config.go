package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Schedoosh server.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// AuthConfig holds the authentication configuration.
type AuthConfig struct {
	// JWTSecret is the key used to sign access tokens.
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	// TokenValidity is how long an issued access token stays valid.
	TokenValidity time.Duration `yaml:"token_validity" mapstructure:"token_validity"`
}

// Load reads the configuration from the given file path. If path is empty,
// the config file is searched in the default locations. Environment
// variables with the SCHEDOOSH_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("SCHEDOOSH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.schedoosh")
		v.AddConfigPath("/etc/schedoosh")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:5000")

	// Database defaults
	v.SetDefault("database.path", "./data/schedoosh.db")

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_validity", "24h")
}

func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing config")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Auth == nil || c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth jwt secret is required")
	}

	if c.Auth.TokenValidity <= 0 {
		return fmt.Errorf("auth token validity must be greater than 0")
	}

	return nil
}
