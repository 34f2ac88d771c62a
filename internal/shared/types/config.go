package types

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Port           string   `json:"port" yaml:"port" toml:"port"`
	Environment    string   `json:"environment" yaml:"environment" toml:"environment"`
	StaticDir      string   `json:"static_dir" yaml:"static_dir" toml:"static_dir"`
	CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	LogLevel       string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	APIURL         string   `json:"api_url" yaml:"api_url" toml:"api_url"`
	RequestTimeout int      `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Port:           "3001",
		Environment:    EnvDevelopment,
		CORSOrigins:    []string{"*"},
		LogLevel:       "info",
		APIURL:         "http://localhost:3001",
		RequestTimeout: 10,
	}
}

// IsProduction reports whether the frontend should be served.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// ValidatePort checks that Port is a TCP port number.
func (c Config) ValidatePort() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q: must be a number between 1 and 65535", c.Port)
	}
	return nil
}
