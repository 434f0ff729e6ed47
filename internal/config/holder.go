package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Holder exposes the engine policy block with hot reload. Readers always see
// a consistent snapshot; calculations in flight keep the config they started
// with.
type Holder struct {
	current atomic.Value // holds EngineConfig
}

// NewHolder reads pricingkit.yml if present, falling back to defaults, and
// watches the file for changes.
func NewHolder() (*Holder, error) {
	v := viper.New()

	v.SetConfigName("pricingkit")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/pricingkit")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PRICINGKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		defaults := DefaultEngineConfig()
		v.SetDefault("engine.taxCombinationMode", defaults.TaxCombinationMode)
		v.SetDefault("engine.displayPrecision", defaults.DisplayPrecision)
	}

	cfg, err := unmarshalEngine(v)
	if err != nil {
		return nil, err
	}

	holder := &Holder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		next, err := unmarshalEngine(v)
		if err != nil {
			log.Printf("pricingkit: ignoring invalid engine config reload: %v", err)
			return
		}
		holder.current.Store(next)
	})

	return holder, nil
}

// NewStaticHolder pins the holder to a fixed config, mostly for tests and
// callers that configure the engine programmatically.
func NewStaticHolder(cfg EngineConfig) *Holder {
	holder := &Holder{}
	if cfg.TaxCombinationMode == "" {
		cfg.TaxCombinationMode = TaxCombinationAdditive
	}
	holder.current.Store(cfg)
	return holder
}

func (h *Holder) Current() EngineConfig {
	return h.current.Load().(EngineConfig)
}

func unmarshalEngine(v *viper.Viper) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := v.UnmarshalKey("engine", &cfg); err != nil {
		return EngineConfig{}, err
	}
	cfg.TaxCombinationMode = normalizeTaxMode(cfg.TaxCombinationMode)
	return cfg, nil
}
