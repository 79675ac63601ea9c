package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/session"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use --config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig applies environment overrides and defaults to a YAML document.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAppID           = "VOLTERYDE_GATE_APP_ID"
	EnvEnvironment     = "VOLTERYDE_GATE_ENVIRONMENT"
	EnvIdentityURL     = "VOLTERYDE_GATE_IDENTITY_PROVIDER_URL"
	EnvPort            = "VOLTERYDE_GATE_PORT"
	EnvUpstreamURL     = "VOLTERYDE_GATE_UPSTREAM_URL"
	EnvLogLevel        = "VOLTERYDE_GATE_LOG_LEVEL"
	EnvAllowedOrigins  = "VOLTERYDE_GATE_CORS_ALLOWED_ORIGINS"
	EnvDebugServerPort = "VOLTERYDE_GATE_DEBUG_PORT"
	EnvTrustProxy      = "VOLTERYDE_GATE_TRUST_PROXY_HEADERS"
)

func applyEnvironmentOverrides(config *Config) {
	if appID := os.Getenv(EnvAppID); appID != "" {
		config.Gate.AppID = appID
	}

	if environment := os.Getenv(EnvEnvironment); environment != "" {
		config.Gate.Environment = strings.ToLower(environment)
	}

	// applies to whichever environment ends up selected
	if identityURL := os.Getenv(EnvIdentityURL); identityURL != "" {
		env := config.Gate.Environment
		if env == "" {
			env = DefaultGateConfig.Environment
		}
		if config.IdentityProvider.URLs == nil {
			config.IdentityProvider.URLs = map[string]string{}
		}
		config.IdentityProvider.URLs[env] = identityURL
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Server.Port = port
		}
	}

	if upstream := os.Getenv(EnvUpstreamURL); upstream != "" {
		config.Server.UpstreamURL = upstream
	}

	if trust := os.Getenv(EnvTrustProxy); trust != "" {
		if v, err := strconv.ParseBool(trust); err == nil {
			config.Server.TrustProxyHeaders = v
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		config.Log.Level = strings.ToLower(level)
	}

	if origins := os.Getenv(EnvAllowedOrigins); origins != "" {
		config.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	if portStr := os.Getenv(EnvDebugServerPort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			if config.Server.Debug == nil {
				config.Server.Debug = &ServerDebugConfig{}
			}
			config.Server.Debug.Enabled = true
			config.Server.Debug.Port = port
		}
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

func validateConfig(config *Config) error {
	if err := newValidator().Struct(config); err != nil {
		return formatValidationErrors(err)
	}

	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateGateConfig()
	if err != nil {
		return err
	}

	err = config.validateIdentityProviderConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.UpstreamURL != "" && c.Server.StaticDir != "" {
		return fmt.Errorf("server.upstream_url and server.static_dir are mutually exclusive")
	}

	if c.Server.UpstreamURL != "" {
		if err := validateURL(c.Server.UpstreamURL, "server.upstream_url"); err != nil {
			return err
		}
	} else if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultServerConfig.StaticDir
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	}

	if c.Log.File != nil {
		if c.Log.File.MaxSizeMB == 0 {
			c.Log.File.MaxSizeMB = DefaultLogFileConfig.MaxSizeMB
		}
		if c.Log.File.MaxBackups == 0 {
			c.Log.File.MaxBackups = DefaultLogFileConfig.MaxBackups
		}
		if c.Log.File.MaxAgeDays == 0 {
			c.Log.File.MaxAgeDays = DefaultLogFileConfig.MaxAgeDays
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateGateConfig() error {
	if strings.TrimSpace(c.Gate.AppID) != c.Gate.AppID {
		return fmt.Errorf("gate.app_id must not have surrounding whitespace")
	}

	if c.Gate.Environment == "" {
		c.Gate.Environment = DefaultGateConfig.Environment
	}

	if len(c.Gate.Allowlist) == 0 {
		c.Gate.Allowlist = append([]string(nil), DefaultGateConfig.Allowlist...)
	}

	return nil
}

func (c *Config) validateIdentityProviderConfig() error {
	for env, raw := range c.IdentityProvider.URLs {
		if err := validateURL(raw, fmt.Sprintf("identity_provider.urls.%s", env)); err != nil {
			return err
		}
	}

	if _, err := endpoints.NewResolver(c.Environment(), c.IdentityProviderURLs()); err != nil {
		return fmt.Errorf("identity provider: %w", err)
	}

	return nil
}

func (c *Config) Environment() endpoints.Environment {
	return endpoints.Environment(c.Gate.Environment)
}

func (c *Config) IdentityProviderURLs() map[endpoints.Environment]string {
	urls := make(map[endpoints.Environment]string, len(c.IdentityProvider.URLs))
	for env, raw := range c.IdentityProvider.URLs {
		urls[endpoints.Environment(env)] = raw
	}
	return urls
}

// CookieOptions marks the session cookie Secure only in production.
func (c *Config) CookieOptions() session.CookieOptions {
	return session.CookieOptions{Secure: c.Environment().IsProduction()}
}

func (c *Config) Resolver() (endpoints.Resolver, error) {
	return endpoints.NewResolver(c.Environment(), c.IdentityProviderURLs())
}
