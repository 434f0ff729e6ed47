package pricingkit

import (
	"github.com/smallbiznis/pricingkit/internal/config"
	"github.com/smallbiznis/pricingkit/internal/logger"
	"go.uber.org/zap"
)

type (
	Config       = config.Config
	EngineConfig = config.EngineConfig

	// ConfigHolder exposes the engine policy block with hot reload.
	ConfigHolder = config.Holder
)

const (
	TaxCombinationAdditive = config.TaxCombinationAdditive
	TaxCombinationPriority = config.TaxCombinationPriority
)

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig() Config { return config.Load() }

// DefaultEngineConfig returns the engine's default calculation policy.
func DefaultEngineConfig() EngineConfig { return config.DefaultEngineConfig() }

// NewConfigHolder reads pricingkit.yml if present, falling back to defaults,
// and watches the file for changes.
func NewConfigHolder() (*ConfigHolder, error) { return config.NewHolder() }

// NewStaticConfigHolder pins the holder to a fixed config, for callers that
// configure the engine programmatically.
func NewStaticConfigHolder(cfg EngineConfig) *ConfigHolder {
	return config.NewStaticHolder(cfg)
}

// NewLogger builds the engine's structured zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) { return logger.New(level) }
