package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type ConfigParam struct {
	ServerPort        string `toml:"server_port"`
	HandleCORS        bool   `toml:"handle_cors"`
	DBDsn             string `toml:"db_dsn"`
	DefaultPageLimit  int    `toml:"default_page_limit"`
	MaxPageLimit      int    `toml:"max_page_limit"`
	AdminSigningKey   string `toml:"admin_signing_key"`
	InternalKeyHash   string `toml:"internal_key_hash"`
	DefaultTenantID   string `toml:"default_tenant_id"`
	SingleTenantMode  bool   `toml:"single_tenant_mode"`
	AuditFailuresHard bool   `toml:"audit_failures_hard"`
	SeedFile          string `toml:"seed_file"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

// LoadConfig reads a toml config file. An empty filename loads dev defaults
// with the in-memory store.
func LoadConfig(filename string) error {
	if filename == "" {
		cfg = defaults()
		return nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	var cp ConfigParam
	if _, err := toml.Decode(string(content), &cp); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}
	applyDefaults(&cp)
	cfg = &cp
	return nil
}

func defaults() *ConfigParam {
	cp := &ConfigParam{
		ServerPort: "8321",
		HandleCORS: true,
	}
	applyDefaults(cp)
	return cp
}

func applyDefaults(cp *ConfigParam) {
	if cp.DefaultPageLimit <= 0 {
		cp.DefaultPageLimit = 50
	}
	if cp.MaxPageLimit <= 0 {
		cp.MaxPageLimit = 200
	}
	if cp.AdminSigningKey == "" {
		cp.AdminSigningKey = "bizgrid-dev-signing-key"
	}
	// Audit write failure fails the outer mutation unless explicitly relaxed.
	cp.AuditFailuresHard = true
}

func init() {
	if err := LoadConfig(""); err != nil {
		panic(err)
	}
}
