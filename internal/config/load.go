package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 selects the bcrypt default cost

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables with the BLOG_ prefix
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables. AutomaticEnv alone
	// does not surface env-only keys through Unmarshal.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "BLOG_SERVER_PORT"},
		{"server.log_level", "BLOG_SERVER_LOG_LEVEL"},
		{"database.url", "BLOG_DATABASE_URL"},
		{"auth.jwt_secret", "BLOG_AUTH_JWT_SECRET"},
		{"auth.token_lifetime_minutes", "BLOG_AUTH_TOKEN_LIFETIME_MINUTES"},
		{"auth.bcrypt_cost", "BLOG_AUTH_BCRYPT_COST"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
