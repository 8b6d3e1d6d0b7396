package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Upstream connector (the integration broker fronting Zoho CRM)
	Connector ConnectorConfig

	// Bridge API surface
	API APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ConnectorConfig configures the upstream connector API. UserID and
// CredentialID identify the connector user and the Zoho CRM credential every
// forwarded call acts on behalf of — statically configured, not resolved per
// authenticated caller.
type ConnectorConfig struct {
	BaseURL      string
	APIVersion   string
	APIKey       string
	UserID       string
	CredentialID string
	Timeout      time.Duration
}

type APIConfig struct {
	AuthKey         string // optional static key required in X-API-Key; empty disables auth
	RateLimitPerMin int
	CORSOrigin      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Connector
	cfg.Connector.BaseURL = viper.GetString("connector.base_url")
	cfg.Connector.APIVersion = viper.GetString("connector.api_version")
	cfg.Connector.APIKey = viper.GetString("connector.api_key")
	cfg.Connector.UserID = viper.GetString("connector.user_id")
	cfg.Connector.CredentialID = viper.GetString("connector.credential_id")
	cfg.Connector.Timeout = viper.GetDuration("connector.timeout")

	// Flat env fallbacks for secrets, so CONNECTOR_API_KEY=... just works
	if key := viper.GetString("connector_api_key"); key != "" {
		cfg.Connector.APIKey = key
	}
	if userID := viper.GetString("connector_user_id"); userID != "" {
		cfg.Connector.UserID = userID
	}
	if credID := viper.GetString("connector_credential_id"); credID != "" {
		cfg.Connector.CredentialID = credID
	}

	// Bridge API surface
	cfg.API.AuthKey = viper.GetString("api.auth_key")
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")
	cfg.API.CORSOrigin = viper.GetString("api.cors_origin")
	if authKey := viper.GetString("bridge_api_key"); authKey != "" {
		cfg.API.AuthKey = authKey
	}

	if err := validateConnectorConfig(&cfg.Connector); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("connector.base_url", "https://embedded.runalloy.com")
	viper.SetDefault("connector.api_version", "2024-03")
	viper.SetDefault("connector.timeout", "30s")

	viper.SetDefault("api.rate_limit_per_min", 120)
	viper.SetDefault("api.cors_origin", "*")
}

// validateConnectorConfig rejects configs the bridge cannot start with.
// Every forwarded call needs the API key plus the user/credential pair, so
// fail fast here instead of surfacing 401s per request.
func validateConnectorConfig(cfg *ConnectorConfig) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("connector.base_url is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("connector API key is required - set connector.api_key in config.yaml or CONNECTOR_API_KEY")
	}
	if cfg.UserID == "" {
		return fmt.Errorf("connector user id is required - set connector.user_id in config.yaml or CONNECTOR_USER_ID")
	}
	if cfg.CredentialID == "" {
		return fmt.Errorf("connector credential id is required - set connector.credential_id in config.yaml or CONNECTOR_CREDENTIAL_ID")
	}
	return nil
}
