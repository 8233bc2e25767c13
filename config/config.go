// Package config loads and validates the settings a ledger process
// needs to start: where to keep its store, which network it belongs
// to, how verbose to log, and the genesis account it should recognize.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"lattice.dev/ledger/ledger"
	"lattice.dev/ledger/primitives"
)

// Config is the full set of settings a ledger deployment needs. It
// intentionally carries none of the reference node's peer/transport
// fields (out of scope here) but keeps the same struct-plus-validator
// shape.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	Network  string `mapstructure:"network"`
	LogLevel string `mapstructure:"log_level"`

	GenesisAddressHex  string `mapstructure:"genesis_address"`
	GenesisSupplyHex   string `mapstructure:"genesis_supply"`
	GenesisOpenHashHex string `mapstructure:"genesis_open_hash"`
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// DefaultDataDir returns the per-user directory the ledger stores its
// database in when none is configured.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".lattice-ledger"
	}
	return filepath.Join(home, ".lattice-ledger")
}

// DefaultConfig returns the settings a fresh devnet deployment starts
// from. The genesis fields are left blank; a real deployment is
// expected to supply its own via file or environment override.
func DefaultConfig() Config {
	return Config{
		DataDir:  DefaultDataDir(),
		Network:  "devnet",
		LogLevel: "info",
	}
}

// Load reads configuration from name.yaml (searched under the given
// paths, falling back to the current directory) and environment
// variables prefixed LATTICE_LEDGER_, layered over DefaultConfig.
func Load(name string, searchPaths ...string) (Config, error) {
	v := viper.New()
	cfg := DefaultConfig()
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("network", cfg.Network)
	v.SetDefault("log_level", cfg.LogLevel)

	v.SetConfigName(name)
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("lattice_ledger")
	v.AutomaticEnv()
	// Keys without a default are unknown to Unmarshal unless bound.
	for _, key := range []string{"genesis_address", "genesis_supply", "genesis_open_hash"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Validate checks that cfg is well-formed and internally consistent.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if strings.TrimSpace(cfg.Network) == "" {
		return errors.New("network is required")
	}
	level := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[level]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if _, err := cfg.Genesis(); err != nil {
		return fmt.Errorf("invalid genesis configuration: %w", err)
	}
	return nil
}

// Genesis decodes the hex-encoded genesis fields into a ledger.Genesis
// the caller can pass to ledger.New.
func (cfg Config) Genesis() (ledger.Genesis, error) {
	address, err := primitives.DecodeHex256(cfg.GenesisAddressHex)
	if err != nil {
		return ledger.Genesis{}, fmt.Errorf("genesis_address: %w", err)
	}
	openHash, err := primitives.DecodeHex256(cfg.GenesisOpenHashHex)
	if err != nil {
		return ledger.Genesis{}, fmt.Errorf("genesis_open_hash: %w", err)
	}
	supply, err := primitives.DecodeHex256(cfg.GenesisSupplyHex)
	if err != nil {
		return ledger.Genesis{}, fmt.Errorf("genesis_supply: %w", err)
	}
	return ledger.Genesis{
		Address:        address,
		OpenSourceHash: openHash,
		Representative: address,
		Supply:         supply,
	}, nil
}
