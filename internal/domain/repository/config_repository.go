package repository

import (
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	// LoadConfigFile parses a TOML, YAML or JSON file on top of the defaults.
	LoadConfigFile(filePath string) (*types.Config, error)
	// Load applies defaults, then the optional file, then environment variables.
	Load(filePath string) (*types.Config, error)
}
