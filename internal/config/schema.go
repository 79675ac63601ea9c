package config

import (
	"volteryde-gate/internal/gate"
)

type Config struct {
	Server           ServerConfig           `yaml:"server"`
	Log              LogConfig              `yaml:"log"`
	CORS             CORSConfig             `yaml:"cors"`
	Gate             GateConfig             `yaml:"gate"`
	IdentityProvider IdentityProviderConfig `yaml:"identity_provider"`
}

type ServerConfig struct {
	Port        int                `yaml:"port" validate:"gte=0,lte=65535"`
	StaticDir   string             `yaml:"static_dir"`
	UpstreamURL string             `yaml:"upstream_url" validate:"omitempty,url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
	// TrustProxyHeaders honors X-Forwarded-* and X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

var DefaultServerConfig = ServerConfig{
	Port:      8080,
	StaticDir: "web/dist",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string         `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string         `yaml:"format" validate:"omitempty,oneof=text json"`
	File   *LogFileConfig `yaml:"file"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

// LogFileConfig enables a rotating log file next to stderr output.
type LogFileConfig struct {
	Path       string `yaml:"path" validate:"required"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

var DefaultLogFileConfig = LogFileConfig{
	MaxSizeMB:  100,
	MaxBackups: 3,
	MaxAgeDays: 28,
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins:   []string{"http://localhost:3000"},
	AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAgeSeconds:    300,
}

type GateConfig struct {
	AppID       string   `yaml:"app_id" validate:"required"`
	Environment string   `yaml:"environment" validate:"omitempty,oneof=development staging production"`
	Allowlist   []string `yaml:"allowlist" validate:"dive,startswith=/"`
}

var DefaultGateConfig = GateConfig{
	Environment: "development",
	Allowlist:   gate.DefaultAllowlist,
}

type IdentityProviderConfig struct {
	URLs map[string]string `yaml:"urls" validate:"dive,keys,oneof=development staging production,endkeys,url"`
}
