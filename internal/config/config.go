// Package config loads CLI settings with viper.
//
// Precedence: bound flags > KEYPADCHAIN_* environment > config file > defaults.
// The config file is the --config path when given, otherwise an optional
// keypadchain.yaml in the working directory.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/keypadchain/batch"
	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/paths"
)

// Config keys.
const (
	KeyDepth       = "depth"
	KeyWorkers     = "workers"
	KeyStrategy    = "strategy"
	KeySharedCache = "shared_cache"
	KeyFormat      = "format"
	KeyVerbosity   = "verbosity"
	KeyMaxExpand   = "max_expand"
)

const (
	envPrefix      = "KEYPADCHAIN"
	configFileName = "keypadchain"
	configFileType = "yaml"
)

// ErrInvalidConfig indicates a setting that fails validation.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the decoded, validated settings.
type Config struct {
	Depth       int
	Workers     int
	Strategy    paths.Strategy
	SharedCache bool
	Format      batch.Format
	Verbosity   int
	MaxExpand   uint64
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDepth, batch.DefaultDepth)
	v.SetDefault(KeyWorkers, batch.DefaultWorkers)
	v.SetDefault(KeyStrategy, paths.LShape.String())
	v.SetDefault(KeySharedCache, false)
	v.SetDefault(KeyFormat, batch.FormatText.String())
	v.SetDefault(KeyVerbosity, 0)
	v.SetDefault(KeyMaxExpand, chain.DefaultMaxExpand)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path into v, or the optional default file when path is
// empty. A missing default file is not an error; a missing explicit one is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read default config: %w", err)
	}
	return nil
}

// Decode validates and converts the settings held by v.
func Decode(v *viper.Viper) (Config, error) {
	cfg := Config{
		Depth:       v.GetInt(KeyDepth),
		Workers:     v.GetInt(KeyWorkers),
		SharedCache: v.GetBool(KeySharedCache),
		Verbosity:   v.GetInt(KeyVerbosity),
		MaxExpand:   v.GetUint64(KeyMaxExpand),
	}
	if cfg.Depth < 0 {
		return Config{}, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidConfig, KeyDepth, cfg.Depth)
	}
	if cfg.MaxExpand == 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyMaxExpand)
	}

	s, err := paths.ParseStrategy(v.GetString(KeyStrategy))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Strategy = s

	f, err := batch.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Format = f

	return cfg, nil
}
