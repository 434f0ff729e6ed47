package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// TaxCombinationMode decides how multiple matching tax rates combine.
const (
	TaxCombinationAdditive = "additive"
	TaxCombinationPriority = "priority"
)

// Config holds engine configuration.
type Config struct {
	AppName    string
	AppVersion string

	Logger LoggerConfig
	Engine EngineConfig
}

type LoggerConfig struct {
	Level string
}

// EngineConfig is the calculation policy block. It is also hot-reloadable
// through Holder when a pricingkit.yml file is present.
type EngineConfig struct {
	// TaxCombinationMode is "additive" (every matching rate contributes) or
	// "priority" (only the highest-priority matching rate applies).
	TaxCombinationMode string `mapstructure:"taxCombinationMode"`

	// DisplayPrecision fixes the decimal places of rendered totals when
	// positive; zero or negative falls back to the currency's own precision.
	DisplayPrecision int32 `mapstructure:"displayPrecision"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TaxCombinationMode: TaxCombinationAdditive,
	}
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:    getenv("APP_SERVICE", "pricingkit"),
		AppVersion: getenv("APP_VERSION", "0.1.0"),
		Logger: LoggerConfig{
			Level: getenv("LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			TaxCombinationMode: normalizeTaxMode(getenv("TAX_COMBINATION_MODE", TaxCombinationAdditive)),
		},
	}
}

func normalizeTaxMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case TaxCombinationPriority:
		return TaxCombinationPriority
	default:
		return TaxCombinationAdditive
	}
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
