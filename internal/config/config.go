// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Template TemplateConfig
	Output   OutputConfig
	Logo     LogoConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// TemplateConfig holds workbook template settings.
type TemplateConfig struct {
	// Path is the template workbook to populate (default: templates/Blank.xlsm)
	Path string `env:"BOYD_TEMPLATE_PATH" default:"templates/Blank.xlsm"`

	// SheetName is the worksheet written into (default: Proposal)
	SheetName string `env:"BOYD_SHEET_NAME" default:"Proposal"`

	// BodyStartRow is the first line item row in the template (default: 27)
	BodyStartRow int `env:"BOYD_BODY_START_ROW" default:"27"`

	// BodyEndRow is the last line item row in the template (default: 47)
	BodyEndRow int `env:"BOYD_BODY_END_ROW" default:"47"`

	// ExtraBlankRows is padding kept below the last line item (default: 3)
	ExtraBlankRows int `env:"BOYD_EXTRA_BLANK_ROWS" default:"3"`

	// TotalsLookup selects how totals cells are found: label or offset (default: label)
	TotalsLookup string `env:"BOYD_TOTALS_LOOKUP" default:"label"`
}

// OutputConfig holds generated file settings.
type OutputConfig struct {
	// Dir is where rendered proposals are written (default: output)
	Dir string `env:"BOYD_OUTPUT_DIR" default:"output"`

	// FilePrefix prefixes every generated file name (default: Boyd_Proposal_)
	FilePrefix string `env:"BOYD_OUTPUT_PREFIX" default:"Boyd_Proposal_"`
}

// LogoConfig holds company logo settings.
type LogoConfig struct {
	// Path is an image file embedded in each proposal; empty skips the logo
	Path string `env:"BOYD_LOGO_PATH"`

	// AnchorCell is where the logo is placed (default: B2)
	AnchorCell string `env:"BOYD_LOGO_CELL" default:"B2"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
