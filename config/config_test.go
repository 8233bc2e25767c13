package config

import (
	"os"
	"path/filepath"
	"testing"

	"lattice.dev/ledger/primitives"
)

func TestDefaultConfigLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level = %q, want info", cfg.LogLevel)
	}
	if cfg.Network != "devnet" {
		t.Fatalf("default network = %q, want devnet", cfg.Network)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	cfg.GenesisAddressHex = primitives.EncodeHex256(primitives.Uint256FromUint64(1))
	cfg.GenesisOpenHashHex = primitives.EncodeHex256(primitives.Uint256FromUint64(2))
	cfg.GenesisSupplyHex = primitives.EncodeHex256(primitives.Uint256FromUint64(3))
	if err := Validate(cfg); err == nil {
		t.Fatal("expected invalid log level to be rejected")
	}
}

func TestValidateRejectsMissingGenesis(t *testing.T) {
	cfg := DefaultConfig()
	if err := Validate(cfg); err == nil {
		t.Fatal("expected missing genesis fields to be rejected")
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GenesisAddressHex = primitives.EncodeHex256(primitives.Uint256FromUint64(1))
	cfg.GenesisOpenHashHex = primitives.EncodeHex256(primitives.Uint256FromUint64(2))
	cfg.GenesisSupplyHex = primitives.EncodeHex256(primitives.Uint256FromUint64(1_000_000))
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	g, err := cfg.Genesis()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Supply.Equal(primitives.Uint256FromUint64(1_000_000)) {
		t.Fatalf("genesis supply = %s, want 1000000", g.Supply)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("network: testnet\nlog_level: debug\ndata_dir: " + filepath.Join(dir, "data") + "\n")
	if err := os.WriteFile(filepath.Join(dir, "ledger.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("ledger", dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Network != "testnet" {
		t.Fatalf("network = %q, want testnet", cfg.Network)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load("nonexistent", dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Network != "devnet" {
		t.Fatalf("network = %q, want devnet default", cfg.Network)
	}
}
