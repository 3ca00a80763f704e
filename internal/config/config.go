package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the full application configuration loaded from file/env.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Jira   JiraConfig   `mapstructure:"jira"`
}

// ServerConfig holds options for the local HTTP server.
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

// JiraConfig encapsulates the Jira site and its credentials.
type JiraConfig struct {
	Site               string `mapstructure:"site"`
	ServiceCredentials `mapstructure:",squash"`
}

// ServiceCredentials describes authentication for the Jira REST API.
type ServiceCredentials struct {
	Email    string `mapstructure:"email"`
	APIToken string `mapstructure:"api_token"`
}

// Load reads configuration from the provided directory and environment
// variables, falling back to .netrc for missing credentials.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path != "" {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			v.AddConfigPath(path)
		} else {
			v.SetConfigFile(path)
		}
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("jira_api")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.applyNetrcDefaults(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Jira.Site == "" {
		return fmt.Errorf("config: jira.site is required")
	}

	if !strings.HasPrefix(c.Jira.Site, "http://") && !strings.HasPrefix(c.Jira.Site, "https://") {
		return fmt.Errorf("config: jira.site must start with http:// or https://")
	}

	if c.Jira.Email == "" || c.Jira.APIToken == "" {
		return fmt.Errorf("config: jira requires email and api_token")
	}

	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	return nil
}
