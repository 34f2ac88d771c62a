package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Variáveis de ambiente reconhecidas.
const (
	EnvPort        = "PORT"
	EnvAppEnv      = "APP_ENV"
	EnvStaticDir   = "STATIC_DIR"
	EnvCORSOrigins = "CORS_ORIGINS"
	EnvLogLevel    = "LOG_LEVEL"
	EnvAPIURL      = "DASHBOARD_API_URL"
	EnvTimeout     = "DASHBOARD_TIMEOUT"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	lookupEnv func(string) (string, bool)
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{lookupEnv: os.LookupEnv}
}

// Load aplica os padrões, depois o arquivo (opcional) e por fim o ambiente.
func (r *ConfigRepositoryImpl) Load(filePath string) (*types.Config, error) {
	config := types.DefaultConfig()

	if filePath != "" {
		fileConfig, err := r.LoadConfigFile(filePath)
		if err != nil {
			return nil, err
		}
		config = *fileConfig
	}

	if err := r.applyEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Campos ausentes no arquivo mantêm os valores padrão.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileConfig types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &fileConfig); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &fileConfig); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &fileConfig); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, fileExtension)
	}

	config := types.DefaultConfig()
	merge(&config, fileConfig)
	return &config, nil
}

// merge copia para dst os campos definidos em src.
func merge(dst *types.Config, src types.Config) {
	if src.Port != "" {
		dst.Port = src.Port
	}
	if src.Environment != "" {
		dst.Environment = src.Environment
	}
	if src.StaticDir != "" {
		dst.StaticDir = src.StaticDir
	}
	if len(src.CORSOrigins) > 0 {
		dst.CORSOrigins = src.CORSOrigins
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.RequestTimeout != 0 {
		dst.RequestTimeout = src.RequestTimeout
	}
}

func (r *ConfigRepositoryImpl) applyEnv(config *types.Config) error {
	config.Port = r.getEnv(EnvPort, config.Port)
	config.Environment = r.getEnv(EnvAppEnv, config.Environment)
	config.StaticDir = r.getEnv(EnvStaticDir, config.StaticDir)
	config.LogLevel = r.getEnv(EnvLogLevel, config.LogLevel)
	config.APIURL = r.getEnv(EnvAPIURL, config.APIURL)

	if origins := r.getEnv(EnvCORSOrigins, ""); origins != "" {
		config.CORSOrigins = SplitList(origins)
	}

	if raw := r.getEnv(EnvTimeout, ""); raw != "" {
		timeout, err := strconv.Atoi(raw)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive number of seconds", EnvTimeout, raw)
		}
		config.RequestTimeout = timeout
	}
	return nil
}

func (r *ConfigRepositoryImpl) getEnv(key, defaultValue string) string {
	if value, ok := r.lookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// SplitList divide uma lista separada por vírgulas, ignorando itens vazios.
func SplitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
